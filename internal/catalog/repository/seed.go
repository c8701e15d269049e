package repository

import "gamerflow_service/internal/catalog/domain"

// SeedGames 預設遊戲資料
func SeedGames() []domain.Game {
	return []domain.Game{
		{ID: "1", Title: "Cyberpunk 2077", Category: "RPG", Thumbnail: "https://images.unsplash.com/photo-1605898835373-02f740d05d1d?q=80&w=1000&auto=format&fit=crop", Rating: 4.8, Trending: true},
		{ID: "2", Title: "Valorant", Category: "FPS", Thumbnail: "https://images.unsplash.com/photo-1614027126733-75778006768e?q=80&w=1000&auto=format&fit=crop", Rating: 4.9, Trending: true},
		{ID: "3", Title: "Elden Ring", Category: "Action", Thumbnail: "https://images.unsplash.com/photo-1542751371-adc38448a05e?q=80&w=1000&auto=format&fit=crop", Rating: 5.0, Trending: true},
		{ID: "4", Title: "Minecraft", Category: "Sandbox", Thumbnail: "https://images.unsplash.com/photo-1627398242454-45a1465c2479?q=80&w=1000&auto=format&fit=crop", Rating: 4.7, Trending: false},
	}
}

// SeedVideos 預設影片資料
func SeedVideos() []domain.Video {
	return []domain.Video{
		{
			ID: "v1", GameID: "2", Title: "Como dominar a Jett en 5 minutos (Guía Pro)", Author: "TenZ Official", Views: "2.4M",
			Thumbnail: "https://images.unsplash.com/photo-1542751371-adc38448a05e?q=80&w=1000&auto=format&fit=crop",
			Duration:  "5:42", Type: domain.VideoGuide,
			Summary: "00:45 Equipamiento básico. 02:15 Uso de humos. 04:30 Combinación de ulti.",
		},
		{
			ID: "v2", GameID: "3", Title: "¡LIVE! Derrotando a Malenia con nivel 1", Author: "SoulsMaster", Views: "12K",
			Thumbnail: "https://images.unsplash.com/photo-1511512578047-dfb367046420?q=80&w=1000&auto=format&fit=crop",
			Duration:  domain.DurationLive, Type: domain.VideoLive,
			Summary: "Stream épico intentando el no-hit.",
		},
		{
			ID: "v3", GameID: "1", Title: "Cyberpunk Phantom Liberty: El final secreto", Author: "GameLeaks", Views: "800K",
			Thumbnail: "https://images.unsplash.com/photo-1538481199705-c710c4e965fc?q=80&w=1000&auto=format&fit=crop",
			Duration:  "12:15", Type: domain.VideoGuide,
			Summary: "01:10 Requisitos de misión. 05:20 Localización clave. 10:45 Cinemática final.",
		},
		{
			ID: "v4", GameID: "2", Title: "Torneo Mundial: Gran Final EN VIVO", Author: "Riot Games", Views: "150K",
			Thumbnail: "https://images.unsplash.com/photo-1550745165-9bc0b252726f?q=80&w=1000&auto=format&fit=crop",
			Duration:  domain.DurationLive, Type: domain.VideoLive,
		},
		{
			ID: "v5", GameID: "4", Title: "100 Días Hardcore: Construcción Épica", Author: "DreamTeam", Views: "5.1M",
			Thumbnail: "https://images.unsplash.com/photo-1580234811497-9df7fd2f357e?q=80&w=1000&auto=format&fit=crop",
			Duration:  "45:00", Type: domain.VideoHighlight,
			Summary: "05:00 Primer diamante. 15:30 Granja de hierro. 32:45 El castillo final.",
		},
	}
}
