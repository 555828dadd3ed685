// Package compiler runs the nova front end: source text to tokens, tokens to
// a syntax tree, and the tree through semantic analysis.
package compiler

import (
	"context"
	"log/slog"
	"time"

	"github.com/you-not-fish/nova/internal/logger"
	"github.com/you-not-fish/nova/internal/syntax"
	"github.com/you-not-fish/nova/internal/types"
	"github.com/you-not-fish/nova/internal/types2"
)

// Stage names a pipeline stage.
type Stage string

const (
	StageLex      Stage = "lex"
	StageParse    Stage = "parse"
	StageSemantic Stage = "semantic"
)

// Options configures a pipeline run.
type Options struct {
	// Logger receives stage timings at debug level. Nil discards them.
	Logger *slog.Logger
}

// Timing records how long one stage took.
type Timing struct {
	Stage    Stage
	Duration time.Duration
}

// Result is the output of a successful run.
type Result struct {
	Filename string
	Tokens   []syntax.Lexeme
	Program  *syntax.Program
	Info     *types2.Info
	Scope    *types.Scope // program frame
	Timings  []Timing
}

// TypeOf returns the name of the type recorded for e, or "" if none.
func (r *Result) TypeOf(e syntax.Expr) string {
	if t := r.Info.TypeOf(e); t != nil {
		return t.String()
	}
	return ""
}

// Compile runs every stage on src. The first failing stage stops the run;
// its error is a *syntax.LexError, *syntax.ParseError or
// *types2.SemanticError.
func Compile(filename, src string, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	res := &Result{Filename: filename}

	start := time.Now()
	toks, err := syntax.Tokenize(filename, src)
	res.timed(log, StageLex, start, "tokens", len(toks))
	if err != nil {
		return nil, err
	}
	res.Tokens = toks

	start = time.Now()
	prog, err := syntax.NewParser(toks).Parse()
	res.timed(log, StageParse, start, "stmts", stmtCount(prog))
	if err != nil {
		return nil, err
	}
	res.Program = prog

	start = time.Now()
	info := &types2.Info{}
	scope, err := types2.Check(prog, nil, info)
	res.timed(log, StageSemantic, start, "exprs", len(info.Types))
	if err != nil {
		return nil, err
	}
	res.Info = info
	res.Scope = scope

	return res, nil
}

// CompileContext runs Compile and gives up when ctx is done. The abandoned
// run finishes in the background; nothing it produces is observed.
func CompileContext(ctx context.Context, filename, src string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type outcome struct {
		res *Result
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := Compile(filename, src, opts)
		done <- outcome{res, err}
	}()

	select {
	case o := <-done:
		return o.res, o.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (r *Result) timed(log *slog.Logger, stage Stage, start time.Time, args ...any) {
	d := time.Since(start)
	r.Timings = append(r.Timings, Timing{Stage: stage, Duration: d})
	logger.LogStage(log, string(stage), r.Filename, append(args, "duration", d)...)
}

func stmtCount(prog *syntax.Program) int {
	if prog == nil {
		return 0
	}
	return len(prog.Stmts)
}
