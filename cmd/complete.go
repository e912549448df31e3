package cmd

import (
	"flag"

	"github.com/etnz/expense/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predictors for flags that have a known set of values. Other flags take free text.
var predictors = map[string]complete.Predictor{
	"file":     predict.Files("*.json"),
	"currency": predict.Set{"USD", "EUR", "GBP", "CHF", "JPY", "CAD"},
	"month":    predict.Set{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"},
}

// completion returns the completion tree of the application, built from the
// flags of each subcommand.
func completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: make(map[string]complete.Predictor),
	}
	flag.CommandLine.VisitAll(func(fl *flag.Flag) { root.Flags[fl.Name] = predictor(fl) })

	for _, c := range Commands() {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(fl *flag.Flag) { sub.Flags[fl.Name] = predictor(fl) })
		root.Sub[c.Name()] = sub
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(append(topics, "*"))
	}
	return root
}

func predictor(fl *flag.Flag) complete.Predictor {
	if p, ok := predictors[fl.Name]; ok {
		return p
	}
	if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}

// Complete runs the shell completion when the program is invoked by the shell
// for it (COMP_LINE is set), in which case it exits. Otherwise it returns.
func Complete(name string) {
	completion().Complete(name)
}
