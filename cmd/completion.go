package cmd

import (
	"strings"

	"github.com/etnz/shopping"
	"github.com/etnz/shopping/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the shop command.
//
// Item names are predicted from the ledger file cfg points to, since the
// global flags are not parsed yet when completing.
func Completion(cfg *Config) *complete.Command {
	items := complete.PredictFunc(func(prefix string) []string {
		return predictItems(cfg.LedgerFile, prefix)
	})
	csvFiles := predict.Files("*.csv")

	topics := predict.Set{"*"}
	if all, err := docs.GetAllTopics(); err == nil {
		topics = append(topics, all...)
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*"),
			"currency":    predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"},
			"log-format":  predict.Set{"console", "json"},
			"v":           predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"add":    {Args: items},
			"remove": {Args: items, Flags: map[string]complete.Predictor{"y": predict.Nothing}},
			"list":   {Flags: map[string]complete.Predictor{"md": predict.Nothing}},
			"total": {Flags: map[string]complete.Predictor{
				"tax":      predict.Something,
				"discount": predict.Something,
				"detail":   predict.Nothing,
				"md":       predict.Nothing,
			}},
			"query":  {Args: predict.Set{"$[*].name", "$[*].quantity", "$[*].price"}},
			"export": {Args: csvFiles, Flags: map[string]complete.Predictor{"json": predict.Nothing}},
			"import": {Args: csvFiles, Flags: map[string]complete.Predictor{"json": predict.Nothing}},
			"topic":  {Args: topics, Flags: map[string]complete.Predictor{"md": predict.Nothing}},
		},
	}
}

// predictItems returns the item names in the ledger file that start with prefix.
func predictItems(path, prefix string) []string {
	if isSQLite(path) {
		return nil
	}
	l, err := shopping.ImportFile(path)
	if err != nil {
		return nil
	}
	var names []string
	for name := range l.All() {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	return names
}
