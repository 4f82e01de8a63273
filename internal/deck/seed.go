package deck

import "github.com/verte-zerg/tuicards/internal/model"

// SeedCards returns the built-in starter deck.
func SeedCards() []model.Card {
	return []model.Card{
		{ID: 1, Chinese: "你好", Pinyin: "nǐ hǎo", English: "hello"},
		{ID: 2, Chinese: "谢谢", Pinyin: "xiè xiè", English: "thank you"},
		{ID: 3, Chinese: "再见", Pinyin: "zài jiàn", English: "goodbye"},
		{ID: 4, Chinese: "朋友", Pinyin: "péng yǒu", English: "friend"},
		{ID: 5, Chinese: "学习", Pinyin: "xué xí", English: "to study"},
		{ID: 6, Chinese: "中国", Pinyin: "zhōng guó", English: "China"},
		{ID: 7, Chinese: "饭", Pinyin: "fàn", English: "food/meal"},
		{ID: 8, Chinese: "水", Pinyin: "shuǐ", English: "water"},
	}
}
