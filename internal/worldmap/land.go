package worldmap

// landMask is a 10x10 degree land/sea grid. Rows run from 90N southwards,
// columns from 180W eastwards; '#' marks land.
var landMask = []string{
	"............####....................", // +90
	"......##########...##...#########...", // +80
	"###########.###.#..#################", // +70
	"..##.#######.....##################.", // +60
	".....#########...################...", // +50
	"......######.....################...", // +40
	"......####......###############.....", // +30
	"........###.....#######..##.##......", // +20
	"..........####...######......###....", // +10
	"..........#####....####......####...", // +0
	"..........#####....####........##...", // -10
	"...........###.....###.......#####..", // -20
	"...........##......##........#####.#", // -30
	"...........##...................#.#.", // -40
	"...........#........................", // -50
	"...........##.......###...###..###..", // -60
	"####################################", // -70
	"####################################", // -80
}

// IsLand reports whether the coarse land grid marks lat/lon as land
func IsLand(lat, lon float64) bool {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return false
	}
	row := int((90 - lat) / 10)
	col := int((lon + 180) / 10)
	if row >= len(landMask) {
		row = len(landMask) - 1
	}
	if col >= len(landMask[row]) {
		col = len(landMask[row]) - 1
	}
	return landMask[row][col] == '#'
}
