// Package all links every game into the binary. Import it for its side
// effects: each game registers itself with the registry from init().
package all

import (
	_ "github.com/vovakirdan/retrovault/internal/games/asteroids"
	_ "github.com/vovakirdan/retrovault/internal/games/breakout"
	_ "github.com/vovakirdan/retrovault/internal/games/bubblepop"
	_ "github.com/vovakirdan/retrovault/internal/games/clicker"
	_ "github.com/vovakirdan/retrovault/internal/games/cuberunner"
	_ "github.com/vovakirdan/retrovault/internal/games/endlessroad"
	_ "github.com/vovakirdan/retrovault/internal/games/flappy"
	_ "github.com/vovakirdan/retrovault/internal/games/fourinarow"
	_ "github.com/vovakirdan/retrovault/internal/games/froghopper"
	_ "github.com/vovakirdan/retrovault/internal/games/galaxypatrol"
	_ "github.com/vovakirdan/retrovault/internal/games/gemmatch"
	_ "github.com/vovakirdan/retrovault/internal/games/geodash"
	_ "github.com/vovakirdan/retrovault/internal/games/mazemuncher"
	_ "github.com/vovakirdan/retrovault/internal/games/minefield"
	_ "github.com/vovakirdan/retrovault/internal/games/skydodge"
	_ "github.com/vovakirdan/retrovault/internal/games/snake"
	_ "github.com/vovakirdan/retrovault/internal/games/stacktower"
	_ "github.com/vovakirdan/retrovault/internal/games/t2048"
	_ "github.com/vovakirdan/retrovault/internal/games/tetrofall"
	_ "github.com/vovakirdan/retrovault/internal/games/wordguess"
)
