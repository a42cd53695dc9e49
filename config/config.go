package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/fall-development-rob/curvemath/bond"
	"github.com/fall-development-rob/curvemath/curve"
	"github.com/fall-development-rob/curvemath/curvefit"
	"github.com/fall-development-rob/curvemath/dmath"
	"github.com/fall-development-rob/curvemath/linsolve"
	"github.com/fall-development-rob/curvemath/newton"
)

// Config holds the kernel's numeric policy. Decimal-valued keys are YAML
// strings parsed on conversion.
type Config struct {
	Math struct {
		ExpTaylorTerms int    `yaml:"exp_taylor_terms"`
		LnSeriesTerms  int    `yaml:"ln_series_terms"`
		SqrtIterations int    `yaml:"sqrt_iterations"`
		RootIterations int    `yaml:"root_iterations"`
		Tolerance      string `yaml:"tolerance"`
		ExpFloor       string `yaml:"exp_floor"`
		ExpCeiling     string `yaml:"exp_ceiling"`
	} `yaml:"math"`
	Solver struct {
		Tolerance        string `yaml:"tolerance"`
		RelaxedTolerance string `yaml:"relaxed_tolerance"`
		MaxIterations    int    `yaml:"max_iterations"`
		LowerBound       string `yaml:"lower_bound"`
		UpperBound       string `yaml:"upper_bound"`
	} `yaml:"solver"`
	Linsolve struct {
		SingularEpsilon string `yaml:"singular_epsilon"`
		ZeroPivotPolicy string `yaml:"zero_pivot_policy"` // "skip" or "fail"
	} `yaml:"linsolve"`
	Bootstrap struct {
		Frequency int `yaml:"frequency"`
	} `yaml:"bootstrap"`
	Fit struct {
		Lambdas      []string `yaml:"lambdas"`
		RefineDeltas []string `yaml:"refine_deltas"`
		PoorFitRMSE  string   `yaml:"poor_fit_rmse"`
	} `yaml:"fit"`
}

// Default returns the full default policy, identical to loading an
// empty file.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// Load reads the policy from a YAML file and fills in package defaults
// for anything the file leaves out. A missing file returns the full
// default policy.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills every zero-valued field with its package default.
func (cfg *Config) applyDefaults() {
	if cfg.Math.ExpTaylorTerms == 0 {
		cfg.Math.ExpTaylorTerms = dmath.DefaultExpTaylorTerms
	}
	if cfg.Math.LnSeriesTerms == 0 {
		cfg.Math.LnSeriesTerms = dmath.DefaultLnSeriesTerms
	}
	if cfg.Math.SqrtIterations == 0 {
		cfg.Math.SqrtIterations = dmath.DefaultSqrtIterations
	}
	if cfg.Math.RootIterations == 0 {
		cfg.Math.RootIterations = dmath.DefaultRootIterations
	}
	if cfg.Math.Tolerance == "" {
		cfg.Math.Tolerance = "1e-10"
	}
	if cfg.Math.ExpFloor == "" {
		cfg.Math.ExpFloor = "-60"
	}
	if cfg.Math.ExpCeiling == "" {
		cfg.Math.ExpCeiling = "60"
	}
	if cfg.Solver.Tolerance == "" {
		cfg.Solver.Tolerance = "1e-10"
	}
	if cfg.Solver.RelaxedTolerance == "" {
		cfg.Solver.RelaxedTolerance = "1e-2"
	}
	if cfg.Solver.MaxIterations == 0 {
		cfg.Solver.MaxIterations = 50
	}
	if cfg.Solver.LowerBound == "" {
		cfg.Solver.LowerBound = "-0.5"
	}
	if cfg.Solver.UpperBound == "" {
		cfg.Solver.UpperBound = "2"
	}
	if cfg.Linsolve.SingularEpsilon == "" {
		cfg.Linsolve.SingularEpsilon = "1e-12"
	}
	if cfg.Linsolve.ZeroPivotPolicy == "" {
		cfg.Linsolve.ZeroPivotPolicy = "skip"
	}
	if cfg.Bootstrap.Frequency == 0 {
		cfg.Bootstrap.Frequency = 2
	}
	if len(cfg.Fit.Lambdas) == 0 {
		cfg.Fit.Lambdas = []string{"0.25", "0.5", "1", "1.5", "2", "3", "5", "10"}
	}
	if len(cfg.Fit.RefineDeltas) == 0 {
		cfg.Fit.RefineDeltas = []string{"0.1", "0.05", "0.02", "0.01"}
	}
	if cfg.Fit.PoorFitRMSE == "" {
		cfg.Fit.PoorFitRMSE = "0.005"
	}
}

// Validate checks every field the converters will parse, so a bad file
// fails once at startup instead of at first use.
func (c *Config) Validate() error {
	if _, err := c.MathConfig(); err != nil {
		return err
	}
	if _, err := c.SolverOptions(); err != nil {
		return err
	}
	if _, err := c.LinsolveOptions(); err != nil {
		return err
	}
	if _, err := c.BootstrapOptions(); err != nil {
		return err
	}
	if _, err := c.FitOptions(); err != nil {
		return err
	}

	return nil
}

// MathConfig converts the math section to the primitive-layer policy.
func (c *Config) MathConfig() (dmath.Config, error) {
	tol, err := parseDecimal("math.tolerance", c.Math.Tolerance)
	if err != nil {
		return dmath.Config{}, err
	}
	floor, err := parseDecimal("math.exp_floor", c.Math.ExpFloor)
	if err != nil {
		return dmath.Config{}, err
	}
	ceiling, err := parseDecimal("math.exp_ceiling", c.Math.ExpCeiling)
	if err != nil {
		return dmath.Config{}, err
	}

	return dmath.Config{
		ExpTaylorTerms: c.Math.ExpTaylorTerms,
		LnSeriesTerms:  c.Math.LnSeriesTerms,
		SqrtIterations: c.Math.SqrtIterations,
		RootIterations: c.Math.RootIterations,
		Tolerance:      tol,
		ExpFloor:       floor,
		ExpCeiling:     ceiling,
	}, nil
}

// SolverOptions converts the solver section to newton options.
func (c *Config) SolverOptions() ([]newton.Option, error) {
	tol, err := parseDecimal("solver.tolerance", c.Solver.Tolerance)
	if err != nil {
		return nil, err
	}
	relaxed, err := parseDecimal("solver.relaxed_tolerance", c.Solver.RelaxedTolerance)
	if err != nil {
		return nil, err
	}
	lower, err := parseDecimal("solver.lower_bound", c.Solver.LowerBound)
	if err != nil {
		return nil, err
	}
	upper, err := parseDecimal("solver.upper_bound", c.Solver.UpperBound)
	if err != nil {
		return nil, err
	}

	return []newton.Option{
		newton.WithTolerance(tol),
		newton.WithRelaxedTolerance(relaxed),
		newton.WithMaxIterations(c.Solver.MaxIterations),
		newton.WithBounds(lower, upper),
	}, nil
}

// LinsolveOptions converts the linsolve section to solver options.
func (c *Config) LinsolveOptions() ([]linsolve.Option, error) {
	eps, err := parseDecimal("linsolve.singular_epsilon", c.Linsolve.SingularEpsilon)
	if err != nil {
		return nil, err
	}

	var policy linsolve.ZeroPivotPolicy
	switch c.Linsolve.ZeroPivotPolicy {
	case "skip":
		policy = linsolve.ZeroPivotSkip
	case "fail":
		policy = linsolve.ZeroPivotFail
	default:
		return nil, fmt.Errorf("linsolve.zero_pivot_policy: %q is not \"skip\" or \"fail\"", c.Linsolve.ZeroPivotPolicy)
	}

	return []linsolve.Option{
		linsolve.WithSingularEpsilon(eps),
		linsolve.WithZeroPivotPolicy(policy),
	}, nil
}

// YTMOptions converts the math and solver sections to bond options.
func (c *Config) YTMOptions() ([]bond.Option, error) {
	math, err := c.MathConfig()
	if err != nil {
		return nil, err
	}
	tol, err := parseDecimal("solver.tolerance", c.Solver.Tolerance)
	if err != nil {
		return nil, err
	}
	relaxed, err := parseDecimal("solver.relaxed_tolerance", c.Solver.RelaxedTolerance)
	if err != nil {
		return nil, err
	}
	lower, err := parseDecimal("solver.lower_bound", c.Solver.LowerBound)
	if err != nil {
		return nil, err
	}
	upper, err := parseDecimal("solver.upper_bound", c.Solver.UpperBound)
	if err != nil {
		return nil, err
	}

	return []bond.Option{
		bond.WithMathConfig(math),
		bond.WithSolverOptions(bond.SolverOptions{
			Tolerance:        tol,
			RelaxedTolerance: relaxed,
			MaxIterations:    c.Solver.MaxIterations,
			LowerBound:       lower,
			UpperBound:       upper,
		}),
	}, nil
}

// BootstrapOptions converts the bootstrap and math sections to curve
// options.
func (c *Config) BootstrapOptions() ([]curve.Option, error) {
	math, err := c.MathConfig()
	if err != nil {
		return nil, err
	}

	return []curve.Option{
		curve.WithFrequency(c.Bootstrap.Frequency),
		curve.WithMathConfig(math),
	}, nil
}

// FitOptions converts the fit and math sections to curvefit options.
func (c *Config) FitOptions() ([]curvefit.Option, error) {
	math, err := c.MathConfig()
	if err != nil {
		return nil, err
	}
	lambdas, err := parseDecimals("fit.lambdas", c.Fit.Lambdas)
	if err != nil {
		return nil, err
	}
	deltas, err := parseDecimals("fit.refine_deltas", c.Fit.RefineDeltas)
	if err != nil {
		return nil, err
	}
	threshold, err := parseDecimal("fit.poor_fit_rmse", c.Fit.PoorFitRMSE)
	if err != nil {
		return nil, err
	}

	return []curvefit.Option{
		curvefit.WithMathConfig(math),
		curvefit.WithLambdas(lambdas...),
		curvefit.WithRefineDeltas(deltas...),
		curvefit.WithPoorFitRMSE(threshold),
	}, nil
}

// parseDecimal parses one decimal-valued key, naming it on failure.
func parseDecimal(key, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: %w", key, err)
	}

	return d, nil
}

// parseDecimals parses a list-valued key, naming the offending index.
func parseDecimals(key string, values []string) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out[i] = d
	}

	return out, nil
}
