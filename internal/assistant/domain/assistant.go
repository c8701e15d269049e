package domain

import "errors"

// Difficulty insight 難度
type Difficulty string

const (
	// Easy 簡單
	Easy Difficulty = "Easy"
	// Medium 普通
	Medium Difficulty = "Medium"
	// Hard 困難
	Hard Difficulty = "Hard"
)

// Valid difficulty 是否在 enum 內
func (d Difficulty) Valid() bool {
	return d == Easy || d == Medium || d == Hard
}

// Insight 遊戲提示
type Insight struct {
	Tip         string     `json:"tip"`
	WhyTrending string     `json:"whyTrending"`
	Difficulty  Difficulty `json:"difficulty"`
}

// Tool assistant 工具
type Tool string

const (
	// ToolChat thinking chat
	ToolChat Tool = "chat"
	// ToolSearch web grounded search
	ToolSearch Tool = "search"
	// ToolImage image forge
	ToolImage Tool = "image"
)

// Valid tool 是否存在
func (t Tool) Valid() bool {
	return t == ToolChat || t == ToolSearch || t == ToolImage
}

// Role chat message role
type Role string

const (
	// RoleUser user message
	RoleUser Role = "user"
	// RoleModel model message
	RoleModel Role = "model"
)

// Source grounded search 來源
type Source struct {
	Title string `json:"title" bson:"title"`
	URI   string `json:"uri" bson:"uri"`
}

// ChatMessage 對話訊息
type ChatMessage struct {
	ID        string   `json:"id" bson:"id"`
	Role      Role     `json:"role" bson:"role"`
	Text      string   `json:"text" bson:"text"`
	Thinking  string   `json:"thinking,omitempty" bson:"thinking,omitempty"`
	Sources   []Source `json:"sources,omitempty" bson:"sources,omitempty"`
	Failed    bool     `json:"failed,omitempty" bson:"failed,omitempty"`
	Timestamp int64    `json:"timestamp" bson:"timestamp"`
}

// Conversation 某 profile 某工具的對話
type Conversation struct {
	ProfileID string        `json:"profile_id" bson:"profile_id"`
	Tool      Tool          `json:"tool" bson:"tool"`
	Messages  []ChatMessage `json:"messages" bson:"messages"`
	UpdatedAt int64         `json:"updated_at" bson:"updated_at"`
}

// ChatReply backend chat 回覆
type ChatReply struct {
	Text     string
	Thinking string
}

// SearchReply backend grounded search 回覆
type SearchReply struct {
	Text    string
	Sources []Source
}

// Image 圖片位元組
type Image struct {
	Data     []byte
	MIMEType string
}

// ImageEdit image forge 結果
type ImageEdit struct {
	ID          string `json:"id"`
	OriginalURL string `json:"original_url"`
	EditedURL   string `json:"edited_url,omitempty"`
	Edited      bool   `json:"edited"`
	MIMEType    string `json:"mime_type,omitempty"`
	Data        []byte `json:"data,omitempty"`
	Message     string `json:"message,omitempty"`
}

// Outcome AI 呼叫結果: 成功 payload 或失敗原因 + fallback payload
type Outcome[T any] struct {
	Payload T      `json:"payload"`
	Failed  bool   `json:"failed"`
	Reason  string `json:"reason,omitempty"`
}

// Succeed success outcome
func Succeed[T any](payload T) Outcome[T] {
	return Outcome[T]{Payload: payload}
}

// Fail failed outcome carrying fallback payload
func Fail[T any](fallback T, err error) Outcome[T] {
	o := Outcome[T]{Payload: fallback, Failed: true}
	if err != nil {
		o.Reason = err.Error()
	}
	return o
}

// fallback 文字
const (
	FallbackTip           = "Master the basic movements before attempting complex combos."
	FallbackWhyTrending   = "Major recent season update."
	FallbackChat          = "Neural link error."
	FallbackEmptyChat     = "Operation failed."
	FallbackEmptySearch   = "No results found."
	FallbackSourceTitle   = "Source"
	FallbackLiveAnalysis  = "Active and positive audience."
	FallbackEmptyLiveChat = "Chat is hyped about the current play."
	FallbackDeepAnalysis  = "Analysis failed."
	DeepAnalysisHeadline  = "Deep analysis"
	FallbackImageEdit     = "Image edit failed."
)

// FallbackInsight 預設 insight
func FallbackInsight() Insight {
	return Insight{Tip: FallbackTip, WhyTrending: FallbackWhyTrending, Difficulty: Medium}
}

var (
	// ErrEmptyPrompt prompt 為空
	ErrEmptyPrompt = errors.New("prompt is empty")
	// ErrInvalidTool tool 不存在
	ErrInvalidTool = errors.New("invalid assistant tool")
	// ErrEmptyImage 沒有圖片
	ErrEmptyImage = errors.New("image is empty")
	// ErrImageNotFound forge 圖片不存在或未啟用儲存
	ErrImageNotFound = errors.New("image not found")
	// ErrBackendOffline 未設定 AI backend
	ErrBackendOffline = errors.New("assistant backend offline")
	// ErrEmptyResponse backend 沒有內容
	ErrEmptyResponse = errors.New("empty response from backend")
)
