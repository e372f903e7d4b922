package puzzle

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/monkeymap/internal/grid"
	"github.com/cory-johannsen/monkeymap/internal/route"
	"github.com/cory-johannsen/monkeymap/internal/walk"
)

// Result is the outcome of one solve.
type Result struct {
	// RunID identifies the solve in logs.
	RunID string
	Final walk.State
	Score uint64
	// Rows and Moves describe the parsed input.
	Rows  int
	Moves int
}

// Parse splits text and parses both blocks.
//
// Postcondition: Returns a non-nil Maze and a non-empty Path, or the first parse error.
func Parse(text string) (*grid.Maze, route.Path, error) {
	mapText, pathText, err := Split(text)
	if err != nil {
		return nil, nil, err
	}
	maze, err := grid.ParseMaze(mapText)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing map: %w", err)
	}
	path, err := route.ParsePath(pathText)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing path: %w", err)
	}
	return maze, path, nil
}

// Solve parses text, walks the path and scores the final state.
//
// Postcondition: Returns the score, or an error if parsing or traversal failed.
func Solve(text string) (uint64, error) {
	maze, path, err := Parse(text)
	if err != nil {
		return 0, err
	}
	final, err := walk.New(maze, path).Final()
	if err != nil {
		return 0, fmt.Errorf("walking path: %w", err)
	}
	return walk.Score(final), nil
}

// Runner solves puzzles and logs each run.
// Instruction states are logged at debug level; with traceTiles every tile step is too.
type Runner struct {
	logger     *zap.Logger
	traceTiles bool
}

// NewRunner creates a Runner that logs to logger.
//
// Precondition: logger must be non-nil.
func NewRunner(logger *zap.Logger, traceTiles bool) *Runner {
	return &Runner{logger: logger, traceTiles: traceTiles}
}

// Run solves text and logs the outcome under a fresh run id.
//
// Postcondition: Returns a Result, or an error if parsing or traversal failed.
func (r *Runner) Run(text string) (Result, error) {
	start := time.Now()
	runID := uuid.New().String()
	logger := r.logger.With(zap.String("run_id", runID))

	maze, path, err := Parse(text)
	if err != nil {
		logger.Error("parsing puzzle", zap.Error(err))
		return Result{}, err
	}
	logger.Info("puzzle parsed",
		zap.Int("rows", maze.RowCount()),
		zap.Int("moves", len(path)),
		zap.Uint64("tiles_requested", path.Steps()),
	)

	w := walk.New(maze, path)
	tiles := 0
	w.OnTile = func(s walk.State) {
		tiles++
		if r.traceTiles {
			logger.Debug("tile",
				zap.Int("x", s.Position.X),
				zap.Int("y", s.Position.Y),
				zap.Stringer("facing", s.Direction),
			)
		}
	}

	instruction := 0
	for s := range w.States() {
		instruction++
		logger.Debug("instruction applied",
			zap.Int("index", instruction),
			zap.Stringer("move", path[instruction-1]),
			zap.Stringer("state", s),
		)
	}
	if err := w.Err(); err != nil {
		logger.Error("walking path", zap.Error(err))
		return Result{}, fmt.Errorf("walking path: %w", err)
	}

	final := w.State()
	score := walk.Score(final)
	logger.Info("puzzle solved",
		zap.Int("x", final.Position.X),
		zap.Int("y", final.Position.Y),
		zap.Stringer("facing", final.Direction),
		zap.Int("tiles_moved", tiles),
		zap.Uint64("score", score),
		zap.Duration("elapsed", time.Since(start)),
	)
	return Result{
		RunID: runID,
		Final: final,
		Score: score,
		Rows:  maze.RowCount(),
		Moves: len(path),
	}, nil
}
