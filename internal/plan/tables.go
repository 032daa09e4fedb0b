package plan

import (
	"fmt"
	"strings"
)

// Static lookup tables behind the calculator. Keys are the normalized
// main category (see MainCategory) and the area label from the request.
// Every lookup has a default so unknown categories and areas still
// produce a complete plan.

// MainCategory strips a "親 - 子" composite label down to its parent,
// e.g. "和食 - 寿司" becomes "和食". Plain labels pass through unchanged.
func MainCategory(businessType string) string {
	if before, _, found := strings.Cut(businessType, " - "); found {
		return before
	}
	return businessType
}

var concepts = map[string]map[string]string{
	"カフェ": {
		"駅近":    "通勤客が立ち寄りたくなる、香り高いコーヒーと焼き立てペストリーの朝カフェ",
		"住宅街":   "地域のリビングルームとして、親子が集う居心地の良いコミュニティカフェ",
		"オフィス街": "ランチ需要を捉える、本格コーヒーと軽食が充実したワークカフェ",
		"観光地":   "旅の思い出になる、地元食材を使った特別なスイーツが人気のカフェ",
	},
	"焼鳥": {
		"駅近":    "サラリーマンが仕事帰りにサクッと一杯、気軽に立ち寄れる立ち飲み焼鳥",
		"住宅街":   "家族連れも安心、座敷完備で地元に愛される炭火焼鳥専門店",
		"オフィス街": "ランチは丼もの、夜は焼鳥で二毛作、効率重視の焼鳥ダイニング",
		"観光地":   "地鶏にこだわった、観光客が行列する名物焼鳥店",
	},
	"ラーメン": {
		"駅近":    "駅前立地を活かした、回転率重視の王道醤油ラーメン",
		"住宅街":   "ファミリー層も来店しやすい、優しい味わいの地域密着型ラーメン店",
		"オフィス街": "ランチタイム一本勝負、濃厚スープで満足度の高い二郎系ラーメン",
		"観光地":   "ご当地食材を使った、SNS映えする創作ラーメンが人気の店",
	},
	"和食": {
		"駅近":    "駅前立地を活かした、手軽に楽しめる本格和食",
		"住宅街":   "家族で楽しめる、地域に愛される和食店",
		"オフィス街": "ランチ需要を捉える、定食や丼ものが充実した和食店",
		"観光地":   "地元の食材を活かした、観光客に人気の和食店",
	},
	"洋食": {
		"駅近":    "駅前立地を活かした、気軽に楽しめる洋食店",
		"住宅街":   "家族で楽しめる、本格的な洋食店",
		"オフィス街": "ランチ需要を捉える、ビジネスパーソン向けの洋食店",
		"観光地":   "観光客に人気の、特別感のある洋食店",
	},
	"中華": {
		"駅近":    "駅前立地を活かした、手軽に楽しめる中華料理店",
		"住宅街":   "家族で楽しめる、地域に愛される中華料理店",
		"オフィス街": "ランチ需要を捉える、定食やランチメニューが充実した中華料理店",
		"観光地":   "本格的な中華料理が楽しめる、観光客に人気の店",
	},
}

func conceptFor(businessType, area string) string {
	main := MainCategory(businessType)
	if c, ok := concepts[main][area]; ok {
		return c
	}
	return fmt.Sprintf("%sの%sとして、地域に愛される、こだわりの味と心地よい空間を提供するお店", area, main)
}

var catchCopies = map[string]map[string]string{
	"カフェ": {
		"駅近":    "朝の一杯で、今日もいい1日を",
		"住宅街":   "地域のリビングルーム、いつでもあなたの居場所",
		"オフィス街": "仕事の合間に、本格コーヒーでリフレッシュ",
		"観光地":   "旅の思い出に、地元の味を",
	},
	"焼鳥": {
		"駅近":    "仕事帰りに、サクッと一杯",
		"住宅街":   "家族で楽しむ、本格炭火焼鳥",
		"オフィス街": "ランチも夜も、焼鳥で二毛作",
		"観光地":   "地鶏にこだわる、名物焼鳥店",
	},
	"ラーメン": {
		"駅近":    "駅前の名物、濃厚スープの一杯",
		"住宅街":   "地域に愛される、優しい味わい",
		"オフィス街": "ランチタイム、満足の一杯",
		"観光地":   "ご当地食材で、SNS映えする一杯",
	},
	"和食": {
		"駅近":    "駅前で、本格和食を",
		"住宅街":   "家族で楽しむ、心温まる和食",
		"オフィス街": "ランチタイム、満足の和食",
		"観光地":   "地元の味、本格和食",
	},
	"洋食": {
		"駅近":    "駅前で、本格洋食を",
		"住宅街":   "家族で楽しむ、心温まる洋食",
		"オフィス街": "ランチタイム、満足の洋食",
		"観光地":   "特別な日、本格洋食",
	},
	"中華": {
		"駅近":    "駅前で、本格中華を",
		"住宅街":   "家族で楽しむ、心温まる中華",
		"オフィス街": "ランチタイム、満足の中華",
		"観光地":   "本格中華、観光客に人気",
	},
}

func catchCopyFor(businessType, area string) string {
	main := MainCategory(businessType)
	if c, ok := catchCopies[main][area]; ok {
		return c
	}
	return fmt.Sprintf("%sで、%sの新しいスタイルを", area, main)
}

var targetAudiences = map[string]map[string]string{
	"カフェ": {
		"駅近":    "通勤・通学客（20-40代）、朝のコーヒー需要",
		"住宅街":   "主婦層、子育て世代、シニア層",
		"オフィス街": "ビジネスパーソン、ランチ需要",
		"観光地":   "観光客、地元住民、SNSユーザー",
	},
	"焼鳥": {
		"駅近":    "サラリーマン（30-50代）、仕事帰りの一杯",
		"住宅街":   "家族連れ、地元住民、週末の集まり",
		"オフィス街": "ビジネスパーソン、ランチ・飲み会需要",
		"観光地":   "観光客、地元の常連客",
	},
	"ラーメン": {
		"駅近":    "通勤客、学生、ランチ需要",
		"住宅街":   "家族連れ、地元住民",
		"オフィス街": "ビジネスパーソン、ランチ需要",
		"観光地":   "観光客、ラーメン好き",
	},
	"和食": {
		"駅近":    "通勤客、学生、ランチ需要",
		"住宅街":   "家族連れ、地元住民",
		"オフィス街": "ビジネスパーソン、ランチ需要",
		"観光地":   "観光客、和食好き",
	},
	"洋食": {
		"駅近":    "通勤客、学生、ランチ需要",
		"住宅街":   "家族連れ、地元住民",
		"オフィス街": "ビジネスパーソン、ランチ需要",
		"観光地":   "観光客、洋食好き",
	},
	"中華": {
		"駅近":    "通勤客、学生、ランチ需要",
		"住宅街":   "家族連れ、地元住民",
		"オフィス街": "ビジネスパーソン、ランチ需要",
		"観光地":   "観光客、中華好き",
	},
}

func targetAudienceFor(businessType, area string) string {
	main := MainCategory(businessType)
	if a, ok := targetAudiences[main][area]; ok {
		return a
	}
	return "幅広い年齢層、地域住民"
}

var menuExamples = map[string][]MenuExample{
	"カフェ": {
		{Name: "スペシャルブレンドコーヒー", Price: 480, Description: "自家焙煎のこだわりブレンド"},
		{Name: "季節のフルーツタルト", Price: 680, Description: "旬のフルーツをたっぷり使用"},
		{Name: "モーニングセット", Price: 850, Description: "トースト・サラダ・ドリンク付き"},
	},
	"焼鳥": {
		{Name: "もも肉（塩）", Price: 180, Description: "ジューシーなもも肉を塩でシンプルに"},
		{Name: "ねぎま", Price: 200, Description: "定番のねぎま、タレで濃厚に"},
		{Name: "つくね", Price: 220, Description: "手作りつくね、卵黄と一緒に"},
	},
	"ラーメン": {
		{Name: "醤油ラーメン", Price: 780, Description: "こだわりの醤油スープ"},
		{Name: "味玉ラーメン", Price: 880, Description: "味玉2個付き、ボリューム満点"},
		{Name: "チャーシュー麺", Price: 980, Description: "厚切りチャーシュー3枚"},
	},
	"和食": {
		{Name: "定食", Price: 850, Description: "ご飯・味噌汁・おかず3品付き"},
		{Name: "丼もの", Price: 680, Description: "ボリューム満点の丼もの"},
		{Name: "お造り", Price: 1200, Description: "新鮮な魚介類の刺身"},
	},
	"洋食": {
		{Name: "ハンバーグ定食", Price: 1200, Description: "手作りハンバーグとサラダ"},
		{Name: "オムライス", Price: 980, Description: "ふわふわ卵のオムライス"},
		{Name: "パスタ", Price: 1100, Description: "本格的なイタリアンパスタ"},
	},
	"中華": {
		{Name: "ラーメン", Price: 780, Description: "こだわりのスープ"},
		{Name: "餃子", Price: 480, Description: "手作り餃子6個"},
		{Name: "麻婆豆腐定食", Price: 850, Description: "本格四川風麻婆豆腐"},
	},
}

func menuExamplesFor(businessType string) []MenuExample {
	if m, ok := menuExamples[MainCategory(businessType)]; ok {
		return m
	}
	return []MenuExample{
		{Name: "おすすめメニュー1", Price: 800, Description: "お店の特色を活かした一品"},
		{Name: "おすすめメニュー2", Price: 900, Description: "人気の定番メニュー"},
		{Name: "おすすめメニュー3", Price: 1000, Description: "特別な日のメニュー"},
	}
}

// SNS strategies are area-parameterized sentences, so the table stores
// format strings with the area slot first.
var snsStrategies = map[string]string{
	"カフェ":  "%sでのカフェ開業では、Instagramでの写真投稿、Googleマップのレビュー獲得、地域SNSでの情報発信が効果的。特に朝のコーヒーやスイーツの写真はSNS映えしやすく、リピーター獲得に繋がります。",
	"焼鳥":   "%sでの焼鳥店では、炭火で焼く様子の動画投稿、メニュー写真、お酒とのペアリング情報をSNSで発信。特に夜の時間帯の投稿が集客に効果的です。",
	"ラーメン": "%sでのラーメン店では、スープの動画、トッピングの写真、食べ方のコツなどをSNSで発信。ランチタイムの混雑状況や待ち時間情報も共有すると良いでしょう。",
	"和食":   "%sでの和食店では、料理の美しい盛り付け写真、季節感のあるメニュー、伝統的な調理法の動画などをSNSで発信。特にランチタイムの情報発信が集客に効果的です。",
	"洋食":   "%sでの洋食店では、本格的な料理の写真、特別感のあるメニュー、店内の雰囲気などをSNSで発信。デートや特別な日の利用を意識した投稿が効果的です。",
	"中華":   "%sでの中華料理店では、ボリューム満点の料理写真、本格的な調理の様子、ランチメニューの情報などをSNSで発信。特にランチタイムの情報発信が集客に効果的です。",
}

func snsStrategyFor(businessType, area string) string {
	main := MainCategory(businessType)
	if s, ok := snsStrategies[main]; ok {
		return fmt.Sprintf(s, area)
	}
	return fmt.Sprintf("%sでの%s店では、定期的なSNS投稿、Googleマップの最適化、口コミ獲得が重要です。", area, main)
}

var actions = map[string]string{
	"カフェ":  "看板メニュー1品を試作し、友人3人に味見してもらう",
	"焼鳥":   "仕入れ候補の鶏肉卸3社に連絡し、見積もりを取る",
	"ラーメン": "スープレシピを1つ完成させ、Instagramに投稿する",
	"和食":   "看板メニュー1品を試作し、友人3人に味見してもらう",
	"洋食":   "看板メニュー1品を試作し、友人3人に味見してもらう",
	"中華":   "看板メニュー1品を試作し、友人3人に味見してもらう",
}

func actionFor(businessType string) string {
	if a, ok := actions[MainCategory(businessType)]; ok {
		return a
	}
	return "看板商品1つを試作し、SNSで反応をチェックする"
}

// Cost-of-goods rate per category. Everything outside the table runs
// at the generic 30%.
var cogsRates = map[string]float64{
	"カフェ":  0.28,
	"焼鳥":   0.32,
	"ラーメン": 0.30,
	"和食":   0.30,
	"洋食":   0.30,
	"中華":   0.30,
}

const defaultCogsRate = 0.30

func cogsRateFor(mainCategory string) float64 {
	if r, ok := cogsRates[mainCategory]; ok {
		return r
	}
	return defaultCogsRate
}

// Fit-out cost multiplier per category (kitchen equipment differs a
// lot between a cafe and a yakitori grill).
var investmentMultipliers = map[string]float64{
	"カフェ":  1.0,
	"焼鳥":   1.3,
	"ラーメン": 1.1,
	"和食":   1.2,
	"洋食":   1.2,
	"中華":   1.1,
}

func investmentMultiplierFor(mainCategory string) float64 {
	if m, ok := investmentMultipliers[mainCategory]; ok {
		return m
	}
	return 1.0
}

// FundingMethods returns the two nationwide subsidies plus one
// area-specific program.
func FundingMethods(area string) []string {
	methods := []string{"小規模事業者持続化補助金", "IT導入補助金"}
	switch area {
	case "観光地":
		methods = append(methods, "観光振興・商店街活性化補助金")
	case "駅近":
		methods = append(methods, "駅前活性化・創業支援補助金")
	default:
		methods = append(methods, "地方自治体の創業支援補助金")
	}
	return methods
}
