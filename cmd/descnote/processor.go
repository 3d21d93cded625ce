// processor.go - transcript conversion pipeline
package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tmorten/descnote-go/internal/config"
	"github.com/tmorten/descnote-go/internal/descriptive"
	"github.com/tmorten/descnote-go/internal/engine"
	"github.com/tmorten/descnote-go/internal/errors"
	"github.com/tmorten/descnote-go/internal/output"
	"github.com/tmorten/descnote-go/internal/transcript"
	"github.com/tmorten/descnote-go/internal/worker"
)

// processor converts transcript streams per the run configuration.
type processor struct {
	cfg *config.Config
}

// processReader converts every game in r and writes the results, in input
// order, to the configured output. Games that fail to convert are logged
// and skipped.
func (p *processor) processReader(name string, r io.Reader) (converted, failed int) {
	games, err := transcript.ReadAll(r)
	if err != nil {
		fmt.Fprintf(p.cfg.LogWriter, "%s: %v\n", name, err)
		failed++
	}
	if len(games) == 0 {
		return converted, failed
	}

	var results []worker.Result
	if p.cfg.Workers > 1 && len(games) > 1 {
		results = p.convertParallel(name, games)
	} else {
		results = make([]worker.Result, len(games))
		for i := range games {
			text, err := p.convertGame(name, i+1, &games[i])
			results[i] = worker.Result{Index: i, Text: text, Err: err}
		}
	}

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(p.cfg.LogWriter, "%v\n", res.Err)
			failed++
			continue
		}
		if _, err := io.WriteString(p.cfg.Output, res.Text); err != nil {
			fmt.Fprintf(p.cfg.LogWriter, "%s: %v\n", name, err)
			failed++
			continue
		}
		converted++
	}
	return converted, failed
}

// convertParallel fans the games of one stream out over the worker pool
// and gathers the results back into input order.
func (p *processor) convertParallel(name string, games []transcript.Game) []worker.Result {
	convert := func(item worker.Item) worker.Result {
		text, err := p.convertGame(name, item.Index+1, item.Game)
		return worker.Result{Index: item.Index, Text: text, Err: err}
	}
	pool := worker.NewPool(convert,
		worker.WithWorkers(p.cfg.Workers),
		worker.WithBufferSize(len(games)))
	pool.Start()

	go func() {
		for i := range games {
			pool.Submit(worker.Item{Game: &games[i], Index: i})
		}
		pool.Close()
	}()

	ordered := make([]worker.Result, len(games))
	for res := range pool.Results() {
		ordered[res.Index] = res
	}
	return ordered
}

// convertGame replays one game from its starting position, translating
// each descriptive move through the live oracle, and renders the game in
// the configured notation.
func (p *processor) convertGame(name string, gameNum int, game *transcript.Game) (string, error) {
	board := engine.NewInitialBoard()
	if fen, ok := game.Tags["FEN"]; ok {
		var err error
		if board, err = engine.NewBoardFromFEN(fen); err != nil {
			return "", p.gameError(err, name, gameNum, game, 0, "")
		}
	}
	pos := engine.NewPosition(board)

	moves := make([]string, 0, len(game.Moves))
	for ply, text := range game.Moves {
		move, err := descriptive.Parse(text, pos)
		if err != nil {
			return "", p.gameError(err, name, gameNum, game, ply+1, text)
		}

		rendered := output.RenderMove(p.cfg.Format, move, pos)
		if err := engine.Apply(board, move); err != nil {
			return "", p.gameError(err, name, gameNum, game, ply+1, text)
		}
		if p.cfg.Checks {
			if engine.IsCheckmate(board) {
				rendered += "#"
			} else if engine.IsInCheck(board, board.ToMove) {
				rendered += "+"
			}
		}
		moves = append(moves, rendered)
	}

	var buf bytes.Buffer
	w := output.NewWriter(&buf)
	err := w.WriteGame(&output.Game{
		Tags:   game.Tags,
		Moves:  moves,
		Result: game.Result,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (p *processor) gameError(err error, name string, gameNum int, game *transcript.Game, ply int, moveText string) error {
	return &errors.GameError{
		Err:      err,
		GameNum:  gameNum,
		PlyNum:   ply,
		MoveText: moveText,
		File:     name,
		Line:     game.StartLine,
	}
}
