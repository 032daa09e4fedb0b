package menu

// Ad-hoc menu suggestions keyed by cuisine type and concept tag
// (e.g. ヘルシー, SNS映え). This is a separate, smaller table than the
// calculator's per-category menu examples.

type Suggestion struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
}

var suggestions = map[string]map[string][]Suggestion{
	"カフェ": {
		"ヘルシー": {
			{Name: "アサイーボウル", Price: 880, Description: "スーパーフード満載、SNS映え抜群"},
			{Name: "グリーンスムージー", Price: 680, Description: "野菜と果物のバランス◎"},
			{Name: "キヌアサラダボウル", Price: 950, Description: "低GI、高タンパク質"},
		},
		"SNS映え": {
			{Name: "レインボーラテ", Price: 750, Description: "7色のグラデーションラテアート"},
			{Name: "フルーツタワーパンケーキ", Price: 1380, Description: "フォトジェニックな盛り付け"},
			{Name: "ユニコーンフラペチーノ", Price: 820, Description: "カラフルで可愛い限定ドリンク"},
		},
	},
	"焼鳥": {
		"ヘルシー": {
			{Name: "野菜巻き串盛り合わせ", Price: 980, Description: "アスパラ・トマト・なすの野菜串"},
			{Name: "むね肉の塩焼き", Price: 380, Description: "低脂質・高タンパク"},
		},
	},
	"ラーメン": {
		"ヘルシー": {
			{Name: "鶏白湯ラーメン（麺半分）", Price: 850, Description: "コラーゲンたっぷり、低糖質"},
			{Name: "野菜たっぷりタンメン", Price: 880, Description: "シャキシャキ野菜山盛り"},
		},
	},
}

// Suggestions looks up by exact type and concept; an unknown pair
// falls back to a single placeholder item.
func Suggestions(businessType, concept string) []Suggestion {
	if s, ok := suggestions[businessType][concept]; ok {
		return s
	}
	return []Suggestion{
		{Name: "おすすめメニュー1", Price: 800, Description: "お店の特色を活かした一品"},
	}
}
