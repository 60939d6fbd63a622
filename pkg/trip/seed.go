package trip

import "github.com/shopspring/decimal"

// Seed returns the built-in trip used when nothing has been saved yet.
// Every call returns a fresh copy.
func Seed() *Data {
	yen := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	price := func(v int64) *decimal.Decimal { p := yen(v); return &p }

	return &Data{
		Title: "合掌村冬日雪景",
		DailyItineraries: map[string]Day{
			"2026-02-04": {
				{ID: 1, Type: Flight, Name: "TPE 第一航廈起飛", Time: MustClock("12:00"), Location: "桃園國際機場(TPE) - 名古屋中部國際機場(NGO)", Details: Details{Note: "表定: Choooo (國泰)"}},
				{ID: 2, Type: Transport, Name: "購買新特麗亞套票", Time: MustClock("15:35"), Location: "中部國際機場國內航廈2樓", Details: Details{Note: "機場-岐阜(鐵路)-高山(巴士)"}},
				{ID: 3, Type: Meal, Name: "晚餐：自訂", Time: MustClock("19:00"), Location: "高山市區", Details: Details{Note: "飛驒牛或蕎麥麵"}},
			},
			"2026-02-05": {
				{ID: 4, Type: Attraction, Name: "宮川朝市", Time: MustClock("9:30"), Location: "岐阜県高山市", Details: Details{Note: "請注意保暖，並準備前往新穗高"}},
				{ID: 5, Type: Transport, Name: "濃飛巴士往新穗高", Time: MustClock("11:40"), Location: "濃飛巴士站", Details: Details{Note: "在H64 新穂高溫泉下車, 票價 2200"}},
				{ID: 6, Type: Attraction, Name: "雪屋祭", Time: MustClock("19:00"), Location: "新穗高溫泉中尾", Details: Details{Note: "新穗高溫泉中尾雪屋祭"}},
			},
			"2026-02-06": {
				{ID: 7, Type: Attraction, Name: "新穗高纜車", Time: MustClock("9:00"), Location: "新穗高高空纜車", Details: Details{Note: "欣賞北阿爾卑斯雪景"}},
				{ID: 8, Type: Meal, Name: "高山清酒廠巡禮", Time: MustClock("15:00"), Location: "原田酒造場", Details: Details{Note: "試飲活動，注意時間不要耽誤"}},
				{ID: 9, Type: Meal, Name: "晚餐：味の与平", Time: MustClock("18:30"), Location: "岐阜県高山市上三之町105", Details: Details{Note: "本店官網菜單確認"}},
			},
			"2026-02-07": {},
			"2026-02-08": {},
			"2026-02-09": {},
		},
		Accommodations: []*Accommodation{
			{Date: "2/4", Name: "ホテルアマネク飛騨高山", Address: "岐阜県高山市花里町４‐７５‐３", Tel: "0577-36-2222"},
			{Date: "2/5", Name: "ホテル穂高", Address: "岐阜県高山市奥飛騨温泉郷新穂高温泉", Tel: "0578-89-2001"},
			{Date: "2/6", Name: "ホテルアマネク飛騨高山", Address: "岐阜県高山市花里町４‐７５‐３", Tel: "0577-36-2222"},
			{Date: "2/7 ~ 2/8", Name: "ベストウェスタンプラス名古屋栄", Address: "愛知県名古屋市中区栄４丁目６－１", Tel: "052-262-6000"},
		},
		ShoppingList: []*ShoppingItem{
			{Name: "Moflin (シルバー)", Location: "ビックカメラ名古屋駅西店", Price: price(39800)},
			{Name: "清酒", Location: "高山老街"},
			{Name: "名古屋限定蝦餅", Location: "中部國際機場"},
		},
		Expenses: []*ExpenseItem{
			{Category: "交通", Name: "新特麗亞套票", Date: "2026-02-04", Amount: yen(5500), Method: "現金", Note: "機場-高山"},
			{Category: "住宿", Name: "ホテルアマネク飛騨高山 (2晚)", Date: "2026-02-04", Amount: yen(30000), Method: "信用卡", Note: "總住宿費的一部分"},
			{Category: "餐飲", Name: "午餐", Date: "2026-02-04", Amount: yen(2000), Method: "現金", Note: "機場輕食"},
		},
		ExchangeRate:   decimal.RequireFromString("0.22"),
		SourceCurrency: DefaultSourceCurrency,
		TargetCurrency: DefaultTargetCurrency,
	}
}
