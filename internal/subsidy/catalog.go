package subsidy

// Subsidy catalog: two nationwide programs shown to everyone, plus one
// entry chosen by area archetype.

type Subsidy struct {
	Name        string  `json:"name"`
	Amount      string  `json:"amount"`
	Detail      string  `json:"detail"`
	Requirement string  `json:"requirement"`
	Badge       *string `json:"badge"`
}

func badge(s string) *string { return &s }

var universal = []Subsidy{
	{
		Name:        "小規模事業者持続化補助金",
		Amount:      "上限：50万円（条件により200万円）",
		Detail:      "販路開拓・生産性向上の取り組みを支援。",
		Requirement: "従業員5人以下の小規模事業者",
		Badge:       badge("募集中"),
	},
	{
		Name:        "IT導入補助金",
		Amount:      "上限：50～450万円",
		Detail:      "POSレジ、予約システム、会計ソフトなどのITツール導入費用を補助。",
		Requirement: "中小企業・小規模事業者",
		Badge:       nil,
	},
}

// ForArea returns the universal catalog plus exactly one area-specific
// entry. Unknown areas get the generic municipal program.
func ForArea(area string) []Subsidy {
	var local Subsidy
	switch area {
	case "観光地":
		local = Subsidy{
			Name:        "観光振興・商店街活性化補助金",
			Amount:      "上限：50～300万円",
			Detail:      "観光地での新規出店を支援。",
			Requirement: "観光地での新規創業者",
			Badge:       badge("地域限定"),
		}
	case "駅近":
		local = Subsidy{
			Name:        "駅前活性化・創業支援補助金",
			Amount:      "上限：50～300万円",
			Detail:      "駅前エリアの活性化を目的とした創業支援。",
			Requirement: "駅前での新規創業者",
			Badge:       badge("地域限定"),
		}
	default:
		local = Subsidy{
			Name:        "地方自治体の創業支援補助金",
			Amount:      "上限：50～300万円",
			Detail:      "開業時の設備投資、広告宣伝費などを支援。",
			Requirement: "新規創業者",
			Badge:       badge("地域限定"),
		}
	}

	out := make([]Subsidy, 0, len(universal)+1)
	out = append(out, universal...)
	out = append(out, local)
	return out
}
