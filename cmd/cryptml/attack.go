package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/patrickSeegmiller/cryptML/internal/logging"
	"github.com/patrickSeegmiller/cryptML/pkg/factor"
	"github.com/patrickSeegmiller/cryptML/pkg/rsakeys"
)

var (
	attackKeyFile  string
	attackModulus  string
	attackExponent string
	attackMethod   string
	attackRounds   uint64
	attackTimeout  time.Duration
)

var attackCmd = &cobra.Command{
	Use:   "attack",
	Short: "Run factorization attacks against an RSA public key",
	Long: `Attack factors the modulus of an RSA public key.

The key is read either from a JSON file (fields "e" and "n", decimal
or hex) or from the --modulus and --exponent flags. With
--method auto every attack is tried in order of expected cost;
otherwise only the named method runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := loadPublicKey()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if attackTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, attackTimeout)
			defer cancel()
		}

		attacks, err := selectAttacks(attackMethod)
		if err != nil {
			return err
		}

		for _, a := range attacks {
			logging.Infof("running %s attack on %d-bit modulus", a.Name(), key.N.BitLen())
			res, err := a.Run(ctx, key)
			if err != nil {
				return fmt.Errorf("%s: %w", a.Name(), err)
			}
			logging.Debugf("%s finished after %d iterations: %s", a.Name(), res.Iterations, res.Status)
			if res.Found() {
				fmt.Printf("method: %s\n", res.Method)
				fmt.Printf("p = %s\n", res.P)
				fmt.Printf("q = %s\n", res.Q)
				return nil
			}
			if res.Status == factor.StatusCancelled {
				logging.Warnf("%s cancelled: %v", a.Name(), ctx.Err())
				break
			}
		}

		fmt.Fprintln(os.Stderr, "no factor found")
		os.Exit(1)
		return nil
	},
}

func init() {
	attackCmd.Flags().StringVar(&attackKeyFile, "key-file", "", "JSON file holding the public key")
	attackCmd.Flags().StringVarP(&attackModulus, "modulus", "n", "", "Modulus (decimal or hex)")
	attackCmd.Flags().StringVarP(&attackExponent, "exponent", "e", "65537", "Public exponent (decimal or hex)")
	attackCmd.Flags().StringVar(&attackMethod, "method", "auto",
		"Attack method (auto, wiener, fermat, pollard-rho, pollard-p-1)")
	attackCmd.Flags().Uint64Var(&attackRounds, "rounds", 0, "Iteration cap per attack (0 = method default)")
	attackCmd.Flags().DurationVar(&attackTimeout, "timeout", 0, "Abort all attacks after this duration")
}

// loadPublicKey builds the target key from --key-file or the flag pair.
func loadPublicKey() (rsakeys.PublicKey, error) {
	if attackKeyFile != "" {
		parser := &rsakeys.JSONKeyParser{}
		key, err := parser.ParsePublicKey(attackKeyFile)
		if err != nil {
			return rsakeys.PublicKey{}, err
		}
		return *key, nil
	}

	if attackModulus == "" {
		return rsakeys.PublicKey{}, errors.New("either --key-file or --modulus is required")
	}
	n, err := rsakeys.ParseIntegerString(attackModulus)
	if err != nil {
		return rsakeys.PublicKey{}, fmt.Errorf("parse modulus: %w", err)
	}
	e, err := rsakeys.ParseIntegerString(attackExponent)
	if err != nil {
		return rsakeys.PublicKey{}, fmt.Errorf("parse exponent: %w", err)
	}
	return rsakeys.PublicKey{E: e, N: n}, nil
}

// selectAttacks maps the --method flag to the attacks to run. The
// --rounds cap applies to whichever bounded methods are selected.
func selectAttacks(method string) ([]factor.Attack, error) {
	switch method {
	case "auto":
		if attackRounds == 0 {
			return factor.All(), nil
		}
		return []factor.Attack{
			&factor.WienerAttack{},
			&factor.FermatAttack{MaxRounds: attackRounds},
			&factor.RhoAttack{Bound: attackRounds},
			&factor.PMinusOneAttack{Bound: attackRounds},
		}, nil
	case factor.MethodWiener:
		return []factor.Attack{&factor.WienerAttack{}}, nil
	case factor.MethodFermat:
		return []factor.Attack{&factor.FermatAttack{MaxRounds: attackRounds}}, nil
	case factor.MethodPollardRho:
		return []factor.Attack{&factor.RhoAttack{Bound: attackRounds}}, nil
	case factor.MethodPollardPMinusOne:
		return []factor.Attack{&factor.PMinusOneAttack{Bound: attackRounds}}, nil
	default:
		return nil, fmt.Errorf("unknown method %q", method)
	}
}
