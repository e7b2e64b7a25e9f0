package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/logrusorgru/aurora"

	"github.com/timpalpant/go-qlearn"
	"github.com/timpalpant/go-qlearn/chain"
	"github.com/timpalpant/go-qlearn/internal/sampling"
)

// printTable writes the Q-values for every non-terminal state, highlighting
// the greedy action in green when it is the rewarded one and red otherwise.
func printTable(w io.Writer, env *chain.Chain, agent *qlearn.QLearn) {
	fmt.Fprintf(w, "%5s |%8s |%8s |\n", "state", "a=0", "a=1")
	for s := 0; s < env.NumStates()-1; s++ {
		row := agent.Row(s)
		best := sampling.Greedy(row)
		fmt.Fprintf(w, "%5d |", s)
		for a, v := range row {
			cell := fmt.Sprintf("%8.3f", v)
			switch {
			case a != best:
				fmt.Fprint(w, aurora.Blue(cell))
			case a == env.OptimalAction(s):
				fmt.Fprint(w, aurora.Green(cell))
			default:
				fmt.Fprint(w, aurora.Red(cell))
			}
			fmt.Fprint(w, " |")
		}
		fmt.Fprintln(w)
	}
}

// writePlot renders fitness per episode as an HTML line chart.
func writePlot(path, name string, fitness []float64) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Fitness per episode",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	episodes := make([]string, len(fitness))
	items := make([]opts.LineData, len(fitness))
	for i, f := range fitness {
		episodes[i] = fmt.Sprintf("%d", i+1)
		items[i] = opts.LineData{Value: f}
	}

	line.SetXAxis(episodes).AddSeries(name, items)

	page := components.NewPage()
	page.AddCharts(line)

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := page.Render(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
