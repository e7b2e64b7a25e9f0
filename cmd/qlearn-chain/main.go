// Command qlearn-chain trains a Q-learning agent on a linear chain
// and reports what it learned.
package main

import (
	goflag "flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/golang/glog"
	"github.com/gosuri/uilive"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/timpalpant/go-qlearn"
	"github.com/timpalpant/go-qlearn/chain"
	"github.com/timpalpant/go-qlearn/policy"
)

const (
	epsilonGreedy = "epsilon-greedy"
	boltzmann     = "boltzmann"
)

type config struct {
	States         int
	Episodes       int
	Policy         string
	Epsilon        float64
	Temperature    float64
	LearningRate   float64
	DiscountFactor float64
	Seed           int64
	Randomize      bool
	PlotPath       string
	Progress       bool
}

func defaultConfig() *config {
	return &config{
		States:         10,
		Episodes:       20,
		Policy:         epsilonGreedy,
		Epsilon:        0.1,
		Temperature:    0.1,
		LearningRate:   0.9,
		DiscountFactor: 0.1,
	}
}

func (c *config) addFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.States, "states", c.States, "Number of states in the chain")
	fs.IntVar(&c.Episodes, "episodes", c.Episodes, "Number of training episodes")
	fs.StringVar(&c.Policy, "policy", c.Policy, "Exploration policy: epsilon-greedy or boltzmann")
	fs.Float64Var(&c.Epsilon, "epsilon", c.Epsilon, "Exploration rate for epsilon-greedy")
	fs.Float64Var(&c.Temperature, "temperature", c.Temperature, "Temperature for boltzmann")
	fs.Float64Var(&c.LearningRate, "learning-rate", c.LearningRate, "Q-learning step size")
	fs.Float64Var(&c.DiscountFactor, "discount", c.DiscountFactor, "Discount factor")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Random seed (0 for a random seed)")
	fs.BoolVar(&c.Randomize, "randomize", c.Randomize, "Initialize the Q-table uniformly in [-0.5, 0.5)")
	fs.StringVar(&c.PlotPath, "plot", c.PlotPath, "Write an HTML chart of fitness per episode to this file")
	fs.BoolVar(&c.Progress, "progress", c.Progress, "Show live training progress")
}

func (c *config) validate() error {
	if c.Episodes < 0 {
		return errors.Errorf("episodes must be non-negative, got %d", c.Episodes)
	}

	if c.Epsilon < 0 || c.Epsilon > 1 {
		return errors.Errorf("epsilon must be in [0, 1], got %v", c.Epsilon)
	}

	if c.Temperature <= 0 {
		return errors.Errorf("temperature must be positive, got %v", c.Temperature)
	}

	return nil
}

func (c *config) newRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	glog.V(1).Infof("Using random seed %d", seed)
	return rand.New(rand.NewSource(seed))
}

func (c *config) newPolicy(rng policy.Rand) (policy.Policy, error) {
	switch c.Policy {
	case epsilonGreedy:
		return policy.NewEpsilonGreedy(c.Epsilon, rng), nil
	case boltzmann:
		return policy.NewBoltzmann(c.Temperature, rng), nil
	default:
		return nil, errors.Errorf("unknown policy %q", c.Policy)
	}
}

func run(cfg *config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	env, err := chain.New(cfg.States)
	if err != nil {
		return err
	}

	rng := cfg.newRand()
	p, err := cfg.newPolicy(rng)
	if err != nil {
		return err
	}

	agent := qlearn.New(chain.NumActions, env.NumStates(), qlearn.Params{
		LearningRate:   cfg.LearningRate,
		DiscountFactor: cfg.DiscountFactor,
		Rand:           rng,
	}, p)
	if cfg.Randomize {
		agent.RandomizeTable()
	}

	var callback func(int, float64)
	if cfg.Progress {
		writer := uilive.New()
		writer.Start()
		defer writer.Stop()
		callback = func(episode int, fitness float64) {
			fmt.Fprintf(writer, "Episode %d/%d: fitness %.2f\n", episode+1, cfg.Episodes, fitness)
		}
	}

	fitness := env.Train(agent, cfg.Episodes, callback)

	var total float64
	for _, f := range fitness {
		total += f
	}
	glog.Infof("Trained %d episodes with %s policy: total fitness %.2f", cfg.Episodes, cfg.Policy, total)

	printTable(os.Stdout, env, agent)
	if cfg.PlotPath != "" {
		if err := writePlot(cfg.PlotPath, cfg.Policy, fitness); err != nil {
			return errors.Wrapf(err, "writing plot to %v", cfg.PlotPath)
		}
	}

	return nil
}

func rootCommand() *cobra.Command {
	cfg := defaultConfig()
	cmd := &cobra.Command{
		Use:           "qlearn-chain",
		Short:         "Train a Q-learning agent on a linear chain of states",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Values were already set through pflag; mark the Go flags parsed for glog.
			return goflag.CommandLine.Parse(nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}

	cfg.addFlags(cmd.Flags())
	cmd.Flags().AddGoFlagSet(goflag.CommandLine)
	return cmd
}

func main() {
	defer glog.Flush()
	if err := rootCommand().Execute(); err != nil {
		glog.Errorf("qlearn-chain: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}
