package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/patrickSeegmiller/cryptML/pkg/factor"
)

func findSubcommand(root *cobra.Command, name string) *cobra.Command {
	for _, c := range root.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"attack", "genkey", "weakkey", "hex"} {
		sub := findSubcommand(cmd, name)
		if sub == nil {
			t.Fatalf("%s command not found", name)
		}
		if sub.Short == "" {
			t.Fatalf("%s command missing short help", name)
		}
	}
}

func TestHexCmd_ConvertsArguments(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"hex", "ff", "1f 73"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("hex command failed: %v", err)
	}

	got := strings.Fields(out.String())
	want := []string{"255", "8051"}
	if len(got) < 2 || got[len(got)-2] != want[0] || got[len(got)-1] != want[1] {
		t.Fatalf("hex output = %q, want %v", out.String(), want)
	}
}

func TestHexCmd_RejectsNonHex(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"hex", "xyz"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for non-hex input")
	}
}

func TestSelectAttacks(t *testing.T) {
	auto, err := selectAttacks("auto")
	if err != nil {
		t.Fatalf("selectAttacks(auto): %v", err)
	}
	if len(auto) != len(factor.All()) {
		t.Fatalf("auto selected %d attacks, want %d", len(auto), len(factor.All()))
	}

	single, err := selectAttacks(factor.MethodWiener)
	if err != nil {
		t.Fatalf("selectAttacks(wiener): %v", err)
	}
	if len(single) != 1 || single[0].Name() != factor.MethodWiener {
		t.Fatalf("wiener selection = %v", single)
	}

	if _, err := selectAttacks("quantum"); err == nil {
		t.Fatal("expected an error for an unknown method")
	}
}

func TestLoadPublicKey_FromFlags(t *testing.T) {
	attackKeyFile = ""
	attackModulus = "0x1f73"
	attackExponent = "17"
	t.Cleanup(func() { attackModulus, attackExponent = "", "65537" })

	key, err := loadPublicKey()
	if err != nil {
		t.Fatalf("loadPublicKey: %v", err)
	}
	if key.N.Int64() != 8051 || key.E.Int64() != 17 {
		t.Fatalf("key = %v", key)
	}
}
