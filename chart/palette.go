package chart

// Category10 is a ten color categorical palette, in assignment order.
var Category10 = []string{
	"#1f77b4",
	"#ff7f0e",
	"#2ca02c",
	"#d62728",
	"#9467bd",
	"#8c564b",
	"#e377c2",
	"#7f7f7f",
	"#bcbd22",
	"#17becf",
}

// SeriesColor returns the hex color of the i-th series. Colors repeat after
// the palette is exhausted.
func SeriesColor(i int) string {
	return Category10[i%len(Category10)]
}
