package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/patrickSeegmiller/cryptML/internal/logging"
	"github.com/patrickSeegmiller/cryptML/pkg/rsakeys"
)

var (
	genkeyBits     int
	genkeyExponent string

	weakkeyBits    int
	weakPrimes     bool
	weakDecryption bool
	weakModulus    bool
)

var genkeyCmd = &cobra.Command{
	Use:   "genkey",
	Short: "Generate a sound RSA key pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		var e *big.Int
		if genkeyExponent != "" {
			var err error
			e, err = rsakeys.ParseIntegerString(genkeyExponent)
			if err != nil {
				return fmt.Errorf("parse exponent: %w", err)
			}
		}

		gen := rsakeys.NewGenerator()
		key, err := gen.GenerateKey(genkeyBits, e)
		if err != nil {
			return err
		}
		printKeyPair(key)
		return nil
	},
}

var weakkeyCmd = &cobra.Command{
	Use:   "weakkey",
	Short: "Generate a deliberately weak RSA key pair",
	Long: `Weakkey generates a key pair with one or more planted flaws:

  --close-primes   primes so close together that Fermat factors N
  --small-d        a private exponent small enough for Wiener's attack
  --fake-modulus   a modulus that is not a product of two primes at all

Flags combine; at least one is required.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := rsakeys.WeaknessProfile{
			WeakPrimes:        weakPrimes,
			WeakDecryptionKey: weakDecryption,
			WeakModulus:       weakModulus,
		}
		if profile.Empty() {
			return fmt.Errorf("at least one weakness flag is required")
		}

		gen := rsakeys.NewGenerator()
		key, err := gen.GenerateWeakKey(profile, weakkeyBits)
		if err != nil {
			return err
		}
		logging.Warnf("this key is intentionally breakable; never use it to protect anything")
		printKeyPair(key)
		return nil
	},
}

func init() {
	genkeyCmd.Flags().IntVar(&genkeyBits, "bits", 2048, "Bit length of each prime factor")
	genkeyCmd.Flags().StringVarP(&genkeyExponent, "exponent", "e", "", "Public exponent (default 65537)")

	weakkeyCmd.Flags().IntVar(&weakkeyBits, "bits", 512, "Bit length of each prime factor")
	weakkeyCmd.Flags().BoolVar(&weakPrimes, "close-primes", false, "Choose primes vulnerable to Fermat factorization")
	weakkeyCmd.Flags().BoolVar(&weakDecryption, "small-d", false, "Choose a private exponent vulnerable to Wiener's attack")
	weakkeyCmd.Flags().BoolVar(&weakModulus, "fake-modulus", false, "Build the modulus from arbitrary factors")
}

func printKeyPair(key *rsakeys.KeyPair) {
	fmt.Printf("n = %s\n", key.Public.N)
	fmt.Printf("e = %s\n", key.Public.E)
	if key.Private.D != nil {
		fmt.Printf("d = %s\n", key.Private.D)
	}
	if key.Primes.P != nil {
		fmt.Printf("p = %s\n", key.Primes.P)
		fmt.Printf("q = %s\n", key.Primes.Q)
	}
}
