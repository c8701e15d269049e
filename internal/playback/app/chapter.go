package app

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gamerflow_service/internal/playback/domain"
)

var (
	// H:MM:SS 或 MM:SS
	timestampPattern = regexp.MustCompile(`(\d{1,2}:)?\d{1,2}:\d{2}`)
	segmentSeparator = regexp.MustCompile(`[.\n]`)
	digitsOnly       = regexp.MustCompile(`^\d+$`)
)

// progress 與秒數來回換算的浮點誤差
const secondsEpsilon = 1e-6

// ExtractChapters 從摘要文字取出章節, 依 offset 由小到大排序
func ExtractChapters(text string) []domain.Chapter {
	chapters := make([]domain.Chapter, 0)

	for _, segment := range segmentSeparator.Split(text, -1) {
		loc := timestampPattern.FindStringIndex(segment)
		if loc == nil {
			continue
		}

		ts := segment[loc[0]:loc[1]]
		label := strings.TrimSpace(segment[:loc[0]] + segment[loc[1]:])
		if label == "" {
			continue
		}

		chapters = append(chapters, domain.Chapter{
			Timestamp: ts,
			Label:     label,
			Offset:    ToSeconds(ts),
		})
	}

	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].Offset < chapters[j].Offset
	})
	return chapters
}

// ToSeconds "M:S" 或 "H:M:S" 轉秒數, 無法解析的部分視為 0
func ToSeconds(ts string) int {
	parts := strings.Split(strings.TrimSpace(ts), ":")
	nums := make([]int, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		n, err := strconv.Atoi(p)
		if err != nil || !digitsOnly.MatchString(p) {
			n = 0
		}
		nums[i] = n
	}

	switch len(nums) {
	case 2:
		return nums[0]*60 + nums[1]
	case 3:
		return nums[0]*3600 + nums[1]*60 + nums[2]
	default:
		return 0
	}
}

// ToTimestamp 秒數轉 "MM:SS", 有小時時為 "H:MM:SS"
func ToTimestamp(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// DurationToSeconds "LIVE" 回傳 LiveDurationSeconds, 其餘同 ToSeconds
func DurationToSeconds(duration string) int {
	if strings.TrimSpace(duration) == "LIVE" {
		return domain.LiveDurationSeconds
	}
	return ToSeconds(duration)
}

// CurrentSeconds progress 百分比換算目前秒數
func CurrentSeconds(progress float64, totalSeconds int) float64 {
	return progress / 100 * float64(totalSeconds)
}

// WholeSeconds 目前秒數取整 (floor)
func WholeSeconds(progress float64, totalSeconds int) int {
	return int(math.Floor(CurrentSeconds(progress, totalSeconds) + secondsEpsilon))
}

// ActiveChapter 回傳 offset <= 目前秒數 的最後一個章節
func ActiveChapter(chapters []domain.Chapter, progress float64, totalSeconds int) (domain.Chapter, bool) {
	current := CurrentSeconds(progress, totalSeconds) + secondsEpsilon
	for i := len(chapters) - 1; i >= 0; i-- {
		if float64(chapters[i].Offset) <= current {
			return chapters[i], true
		}
	}
	return domain.Chapter{}, false
}

// AppendTimestampedNote 在摘要後加上 "<目前時間> <note>" 一行, note 為空時不變
func AppendTimestampedNote(text string, progress float64, totalSeconds int, note string) string {
	note = strings.TrimSpace(note)
	if note == "" {
		return text
	}

	line := ToTimestamp(WholeSeconds(progress, totalSeconds)) + " " + note
	if text == "" {
		return line
	}
	return text + "\n" + line
}

// JumpTo timestamp 轉 progress 百分比, 限制在 [0,100], totalSeconds <= 0 時回傳 0
func JumpTo(ts string, totalSeconds int) float64 {
	if totalSeconds <= 0 {
		return 0
	}
	return ClampProgress(float64(ToSeconds(ts)) / float64(totalSeconds) * 100)
}

// ClampProgress 限制在 [0,100], NaN 視為 0
func ClampProgress(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
