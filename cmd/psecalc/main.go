package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/peter-kozarec/psecalc/internal/cfg"
	"github.com/peter-kozarec/psecalc/internal/dbg"
	"github.com/peter-kozarec/psecalc/pkg/estimate"
	"github.com/peter-kozarec/psecalc/pkg/trade"
	"github.com/peter-kozarec/psecalc/pkg/utility"
	"github.com/peter-kozarec/psecalc/pkg/utility/fixed"
)

var errUsage = errors.New("usage: psecalc [buy|sell|percentage|sellprice] [flags]")

func main() {
	c, err := cfg.Load()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := dbg.NewLogger(c.DevMode, c.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	logger = utility.WithExecutionID(logger)
	logger.Debug("psecalc", zap.String("version", Version))

	schedule, err := c.Schedule()
	if err != nil {
		logger.Fatal("invalid fee schedule", zap.Error(err))
	}

	engine := estimate.NewEngine(logger, estimate.WithSchedule(schedule))

	if err := run(logger, engine, os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			_, _ = fmt.Fprintln(os.Stderr, errUsage)
			os.Exit(2)
		}
		logger.Error("calculation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger, engine *estimate.Engine, args []string, out io.Writer) error {
	if len(args) == 0 {
		return runSamples(logger, engine, out)
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	price := fs.String("price", "", "share price")
	shares := fs.Int64("shares", 0, "number of shares")
	budget := fs.String("budget", "", "money available to buy with")
	buyPrice := fs.String("buy", "", "buy price")
	percent := fs.String("percent", "", "target gain in percent")
	sellPrice := fs.String("sell", "", "target sell price")

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	switch args[0] {
	case "buy", "sell":
		p, err := parsePoint("price", *price)
		if err != nil {
			return err
		}
		if args[0] == "buy" {
			return writeResult(out)(engine.Buy(p, *shares))
		}
		return writeResult(out)(engine.Sell(p, *shares))

	case "percentage":
		points, err := parsePoints(map[string]string{"budget": *budget, "buy": *buyPrice, "percent": *percent})
		if err != nil {
			return err
		}
		return writeReport(logger, out)(engine.EstimateByPercentage(points["budget"], points["buy"], points["percent"]))

	case "sellprice":
		points, err := parsePoints(map[string]string{"budget": *budget, "buy": *buyPrice, "sell": *sellPrice})
		if err != nil {
			return err
		}
		return writeReport(logger, out)(engine.EstimateBySellPrice(points["budget"], points["buy"], points["sell"]))

	default:
		return errUsage
	}
}

func runSamples(logger *zap.Logger, engine *estimate.Engine, out io.Writer) error {
	budget := fixed.MustParse(SampleBudget)
	buyPrice := fixed.MustParse(SampleBuyPrice)

	if err := writeReport(logger, out)(engine.EstimateByPercentage(budget, buyPrice, fixed.MustParse(SamplePercent))); err != nil {
		return err
	}
	return writeReport(logger, out)(engine.EstimateBySellPrice(budget, buyPrice, fixed.MustParse(SampleSellPrice)))
}

func parsePoint(name, value string) (fixed.Point, error) {
	if value == "" {
		return fixed.Point{}, fmt.Errorf("%w: -%s is required", errUsage, name)
	}
	p, err := fixed.Parse(value)
	if err != nil {
		return fixed.Point{}, fmt.Errorf("-%s %q is not a number: %w", name, value, err)
	}
	return p, nil
}

func parsePoints(values map[string]string) (map[string]fixed.Point, error) {
	points := make(map[string]fixed.Point, len(values))
	for name, value := range values {
		p, err := parsePoint(name, value)
		if err != nil {
			return nil, err
		}
		points[name] = p
	}
	return points, nil
}

func writeReport(logger *zap.Logger, out io.Writer) func(estimate.Report, error) error {
	return func(report estimate.Report, err error) error {
		if err != nil {
			return err
		}
		if err := writeJSON(out, report); err != nil {
			return err
		}
		report.Print(logger)
		return nil
	}
}

func writeResult(out io.Writer) func(trade.Result, error) error {
	return func(result trade.Result, err error) error {
		if err != nil {
			return err
		}
		return writeJSON(out, result)
	}
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
