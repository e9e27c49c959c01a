package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gitlab.com/aoterocom/quantengine/analyzer"
)

func main() {
	a := analyzer.Analyzer{}

	app := &cli.App{
		Name:  "quantengine",
		Usage: "technical indicator and portfolio risk analytics",
		Commands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "compute indicator signals for a pair",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pair", Usage: "trading pair, e.g. BTCEUR"},
					&cli.StringFlag{Name: "interval", Usage: "candle interval, e.g. 1h"},
					&cli.StringFlag{Name: "lookback", Usage: "how far back to fetch, e.g. 500h"},
				},
				Action: a.RunAnalyze,
			},
			{
				Name:  "risk",
				Usage: "run a full risk report over an account snapshot",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "account", Usage: "path to a TradingAccount JSON snapshot"},
				},
				Action: a.RunRisk,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}
