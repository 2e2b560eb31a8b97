package aggregate

var palette = []string{
	"#E10600", "#00D2BE", "#0600EF", "#FF8700", "#006F62",
	"#005AFF", "#900000", "#2B4562", "#B6BABD", "#F596C8",
	"#9B0000", "#0072C6", "#F58020", "#52E252", "#FFF500",
}

// EntityColor returns a stable chart color for an entity id
func EntityColor(id int) string {
	if id < 0 {
		id = -id
	}
	return palette[id%len(palette)]
}
