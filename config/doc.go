// Package config loads the kernel's numeric policy from a YAML file and
// converts it into the option types of the individual packages.
//
// Every tunable of the kernel — series lengths, iteration caps,
// tolerances, solver bounds, pivot policy, coupon frequency, decay
// grids — has a YAML key here, with the package defaults applied for
// anything the file leaves out. A missing file is not an error: Load
// then returns the full default policy, so embedding applications can
// ship without a config file at all.
//
// Decimal-valued keys are plain YAML strings ("1e-10", "0.005") parsed
// at conversion time, never floats, so the file round-trips without
// binary-float drift.
package config
