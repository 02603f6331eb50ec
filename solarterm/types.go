package solarterm

import "errors"

var (
	// ErrNoBoundary indicates no Jie crossing exists in the searched
	// 3-year window; with 12 boundaries a year this should not occur.
	ErrNoBoundary = errors.New("solarterm: no boundary in range")

	// ErrBadYear indicates a year outside the supported civil window.
	ErrBadYear = errors.New("solarterm: year out of range")
)

// Jie is one solar-term definition: the ecliptic longitude the Sun must
// reach and the month branch the crossing opens.
type Jie struct {
	// Longitude is the target apparent solar longitude in degrees.
	Longitude float64 `json:"longitude"`
	// Name is the traditional term name, e.g. "Li Chun".
	Name string `json:"term_name"`
	// Branch is the pinyin name of the month branch it opens.
	Branch string `json:"branch"`
	// BranchIndex is the branch's cyclic index, 0–11.
	BranchIndex int `json:"branch_index"`
}

// jieDefinitions lists the 12 Jie in longitude order starting from
// Xiao Han (the first boundary of a civil year, early January).
var jieDefinitions = [12]Jie{
	{285, "Xiao Han", "Chou", 1},
	{315, "Li Chun", "Yin", 2},
	{345, "Jing Zhe", "Mao", 3},
	{15, "Qing Ming", "Chen", 4},
	{45, "Li Xia", "Si", 5},
	{75, "Mang Zhong", "Wu", 6},
	{105, "Xiao Shu", "Wei", 7},
	{135, "Li Qiu", "Shen", 8},
	{165, "Bai Lu", "You", 9},
	{195, "Han Lu", "Xu", 10},
	{225, "Li Dong", "Hai", 11},
	{255, "Da Xue", "Zi", 0},
}

// Date is one resolved Jie crossing.
type Date struct {
	Jie
	// Year, Month, Day are the civil date of the crossing (UT).
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
	// HourUTC is the fractional hour of the crossing, 0–24.
	HourUTC float64 `json:"hour_utc"`
	// JD is the astronomical Julian Day of the crossing.
	JD float64 `json:"jd"`
}
