package mazemuncher

// layout is the maze. '#' is a wall, '-' the ghost house door, '.' a pellet,
// 'o' a power pellet and ' ' an empty corridor. Row 10 wraps around.
var layout = [...]string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.#####.##.#####.######",
	"     #.##..........##.#     ",
	"######.##.###--###.##.######",
	"..........#      #..........",
	"######.##.########.##.######",
	"     #.##..........##.#     ",
	"######.##.########.##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o..##.......  .......##..o#",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#..........................#",
	"############################",
}

const (
	MazeW = 28
	MazeH = len(layout)

	doorRow = 9
	exitRow = 8 // first corridor row above the door
)

var (
	playerStart = Point{X: 13, Y: 16}
	ghostStarts = [...]Point{{X: 13, Y: 10}, {X: 14, Y: 10}, {X: 12, Y: 10}, {X: 15, Y: 10}}
)

// Point is a maze cell.
type Point struct {
	X, Y int
}

func tileAt(x, y int) byte {
	if y < 0 || y >= MazeH {
		return '#'
	}
	x = wrapX(x)
	return layout[y][x]
}

func wrapX(x int) int {
	return ((x % MazeW) + MazeW) % MazeW
}

// isWall reports whether a cell blocks movement. The door only lets ghosts
// out of the house, which is handled by their exit path.
func isWall(x, y int) bool {
	t := tileAt(x, y)
	return t == '#' || t == '-'
}

// pelletKind is what a cell holds.
type pelletKind uint8

const (
	noPellet pelletKind = iota
	pellet
	powerPellet
)

// freshPellets returns the full pellet set for a new maze.
func freshPellets() [MazeH][MazeW]pelletKind {
	var p [MazeH][MazeW]pelletKind
	for y, row := range layout {
		for x := 0; x < MazeW; x++ {
			switch row[x] {
			case '.':
				p[y][x] = pellet
			case 'o':
				p[y][x] = powerPellet
			}
		}
	}
	return p
}
