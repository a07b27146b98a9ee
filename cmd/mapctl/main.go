package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - validate: load the geometry source and identity table and report the regions
// - token:    issue a signed access token, e.g. for POST /api/admin/seed

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)

	// validate parameters
	validateBucket := validateCmd.String("bucket", "", "Geometry bucket URL (defaults to map.geometry.bucketUrl)")
	validateKey := validateCmd.String("key", "", "Geometry object key (defaults to map.geometry.key)")
	validateRegions := validateCmd.String("regions", "", "Identity table file (defaults to map.regionsFile)")

	// token parameters
	tokenSubject := tokenCmd.String("subject", "", "Token subject, e.g. an operator name")
	tokenRoles := tokenCmd.String("roles", "admin", "Comma separated roles")
	tokenTTL := tokenCmd.Duration("ttl", 0, "Token lifetime (defaults to secretKey.ttl)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	flags := mapctlFlags{
		Validate: validateFlags{
			cmd:     validateCmd,
			bucket:  validateBucket,
			key:     validateKey,
			regions: validateRegions,
		},
		Token: tokenFlags{
			cmd:     tokenCmd,
			subject: tokenSubject,
			roles:   tokenRoles,
			ttl:     tokenTTL,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type mapctlFlags struct {
	Validate validateFlags
	Token    tokenFlags
}

type validateFlags struct {
	cmd     *flag.FlagSet
	bucket  *string
	key     *string
	regions *string
}

type tokenFlags struct {
	cmd     *flag.FlagSet
	subject *string
	roles   *string
	ttl     *time.Duration
}

func runSubcommand(ctx context.Context, flags *mapctlFlags) error {
	switch os.Args[1] {
	case "validate":
		return handleValidate(ctx, flags)
	case "token":
		return handleToken(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleValidate(ctx context.Context, flags *mapctlFlags) error {
	if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}

	return runValidate(ctx, os.Stdout, validateOptions{
		bucket:  *flags.Validate.bucket,
		key:     *flags.Validate.key,
		regions: *flags.Validate.regions,
	})
}

func handleToken(flags *mapctlFlags) error {
	if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}

	if *flags.Token.subject == "" {
		return errors.New("--subject flag is required for token command")
	}

	return runToken(os.Stdout, *flags.Token.subject, *flags.Token.roles, *flags.Token.ttl)
}

func printUsage() {
	fmt.Println("Usage: mapctl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  validate    Load the map geometry and report resolved regions")
	fmt.Println("  token       Issue a signed access token")
	fmt.Println("")
	fmt.Println("Use 'mapctl <command> -h' for more information about a command.")
}
