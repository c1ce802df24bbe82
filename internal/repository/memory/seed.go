package memory

import (
	"time"

	"github.com/gamevault/gamevault/internal/model"
)

// seedGames is the demo catalog the site shipped with before the real
// database existed. Timestamps are fixed so the mock path is deterministic.
func seedGames() []model.Game {
	published := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	games := []model.Game{
		{
			ID:          "1",
			DocumentID:  "wukong-1",
			Title:       "Wukong",
			Description: "Epic action RPG based on the legendary Monkey King. Experience breathtaking combat and explore a mystical world filled with ancient legends and powerful enemies.",
			Category:    "Action",
			DownloadURL: "https://goc-cdn.qqby.cn/tg/HihTT_2.6.5.zip",
			Slug:        "wukong",
			Featured:    true,
			Downloads:   125000,
		},
		{
			ID:          "2",
			DocumentID:  "call-me-champion-2",
			Title:       "Call Me Champion",
			Description: "Intense competitive fighting game where you battle to become the ultimate champion. Master various fighting styles and defeat opponents in epic tournaments.",
			Category:    "Action",
			DownloadURL: "https://goc-cdn.qqby.cn/jwgj/ChampionTK_2.2.2.zip",
			Slug:        "call-me-champion",
			Featured:    true,
			Downloads:   89000,
		},
		{
			ID:          "3",
			DocumentID:  "dragonball-showdown-3",
			Title:       "Dragonball Showdown",
			Description: "High-energy fighting game featuring your favorite Dragon Ball characters. Unleash devastating attacks and experience the ultimate anime fighting experience.",
			Category:    "Action",
			DownloadURL: "https://qqby-goc-hangzhou.oss-cn-hangzhou.aliyuncs.com/lzTK/DragonBall_tk_v1.0.3.zip",
			Slug:        "dragonball-showdown",
			Featured:    true,
			Downloads:   156000,
		},
		{
			ID:          "4",
			DocumentID:  "civilization-4",
			Title:       "Civilization",
			Description: "Build and expand your empire through the ages. Develop technologies, wage wars, and lead your civilization to greatness in this epic strategy game.",
			Category:    "Strategy",
			DownloadURL: "https://goc-cdn.qqby.cn/wm/Civilization_tk_1.5.9.zip",
			Slug:        "civilization",
			Featured:    true,
			Downloads:   234000,
		},
		{
			ID:          "5",
			DocumentID:  "clash-of-clans-5",
			Title:       "Clash of Clans",
			Description: "The classic strategy game where you build your village, train troops, and battle other players. Join clans and participate in epic clan wars.",
			Category:    "Strategy",
			DownloadURL: "https://qqby-goc-hk.oss-cn-hongkong.aliyuncs.com/blct/blctTT_1.0.10.zip",
			Slug:        "clash-of-clans",
			Featured:    true,
			Downloads:   456000,
		},
		{
			ID:          "6",
			DocumentID:  "jiang-hu-6",
			Title:       "Jiang Hu",
			Description: "Immersive martial arts RPG set in ancient China. Master kung fu techniques, explore vast landscapes, and forge your legend in the world of martial arts.",
			Category:    "RPG",
			DownloadURL: "https://goc-cdn.qqby.cn/jh/JiangHu_tk_v1.0.18.zip",
			Slug:        "jiang-hu",
			Featured:    false,
			Downloads:   67000,
		},
	}

	for i := range games {
		games[i].CreatedAt = published
		games[i].UpdatedAt = published
		t := published
		games[i].PublishedAt = &t
	}
	return games
}

func seedArticles() []model.Article {
	return []model.Article{
		{
			ID:            "1",
			DocumentID:    "gaming-trends-2025",
			Title:         "Top Gaming Trends to Watch in 2025",
			Excerpt:       "Discover the latest trends shaping the gaming industry this year, from AI-powered NPCs to immersive virtual worlds.",
			Slug:          "gaming-trends-2025",
			Author:        "GameVault Team",
			Content:       "Full article content here...",
			PublishedDate: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		},
	}
}
