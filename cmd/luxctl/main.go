// Command luxctl queries a running lux service over gRPC
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	grpcAdapter "github.com/quentinrf/plant-monitor/services/lux-service/internal/adapters/grpc"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/domain"
	"github.com/quentinrf/plant-monitor/services/lux-service/internal/report"
	"github.com/quentinrf/plant-monitor/services/lux-service/pkg/tlsconfig"
)

// fixtureFlags collects repeated -fixture values
type fixtureFlags []grpcAdapter.FixtureInput

func (f *fixtureFlags) String() string { return fmt.Sprint(len(*f)) }

func (f *fixtureFlags) Set(s string) error {
	in, err := parseFixture(s)
	if err != nil {
		return err
	}
	*f = append(*f, in)
	return nil
}

// parseFixture reads "name:colorTemp[:qty]" for catalog fixtures and
// "name:custom:lumen:watt[:qty[:category]]" for custom ones
func parseFixture(s string) (grpcAdapter.FixtureInput, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return grpcAdapter.FixtureInput{}, fmt.Errorf("fixture %q: want name:colorTemp[:qty]", s)
	}
	in := grpcAdapter.FixtureInput{Name: parts[0], ColorTemp: parts[1], Quantity: 1}

	rest := parts[2:]
	if domain.ColorTemp(in.ColorTemp) == domain.CustomColorTemp {
		if len(rest) < 2 {
			return in, fmt.Errorf("fixture %q: want name:custom:lumen:watt[:qty[:category]]", s)
		}
		var err error
		if in.Lumen, err = strconv.ParseFloat(rest[0], 64); err != nil {
			return in, fmt.Errorf("fixture %q lumen: %w", s, err)
		}
		if in.Watt, err = strconv.ParseFloat(rest[1], 64); err != nil {
			return in, fmt.Errorf("fixture %q watt: %w", s, err)
		}
		rest = rest[2:]
		if len(rest) > 1 {
			in.Category = rest[1]
		}
	}
	if len(rest) > 0 {
		qty, err := strconv.Atoi(rest[0])
		if err != nil {
			return in, fmt.Errorf("fixture %q quantity: %w", s, err)
		}
		in.Quantity = qty
	}
	return in, nil
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	addr := os.Getenv("LUX_ADDR")
	if addr == "" {
		addr = "localhost:50051"
	}

	creds := insecure.NewCredentials()
	if certFile := os.Getenv("TLS_CERT"); certFile != "" {
		tlsCfg, err := tlsconfig.LoadClientTLS(certFile, os.Getenv("TLS_KEY"), os.Getenv("TLS_CA"))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load TLS config")
		}
		creds = credentials.NewTLS(tlsCfg)
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		log.Fatal().Err(err).Str("addr", addr).Msg("failed to dial")
	}
	defer conn.Close()

	client := grpcAdapter.NewLuxServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "estimate":
		err = runEstimate(ctx, client, os.Args[2:])
	case "catalog":
		err = runCatalog(ctx, client, os.Args[2:])
	case "presets":
		err = runPresets(ctx, client)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("request failed")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: luxctl estimate|catalog|presets [flags]")
}

func runEstimate(ctx context.Context, client grpcAdapter.LuxServiceClient, args []string) error {
	fs := flag.NewFlagSet("estimate", flag.ExitOnError)
	area := fs.Float64("area", 20, "floor area in m²")
	height := fs.Float64("height", 2500, "ceiling height in mm")
	target := fs.Int("target", 250, "target illuminance in lx")
	locale := fs.String("locale", "en", "number format locale")
	var fixtures fixtureFlags
	fs.Var(&fixtures, "fixture", "name:colorTemp[:qty] or name:custom:lumen:watt[:qty[:category]], repeatable")
	_ = fs.Parse(args)

	resp, err := client.Estimate(ctx, &grpcAdapter.EstimateRequest{
		Area:      *area,
		HeightMM:  *height,
		TargetLux: *target,
		Fixtures:  fixtures,
	})
	if err != nil {
		return err
	}

	s := report.NewFormatter(*locale).Summarize(resp.Result, *target, *height)
	fmt.Printf("expected   %s (target %s, %s)\n", s.ExpectedLux, s.TargetLux, s.Achievement)
	fmt.Printf("flux       %s\n", s.TotalLumen)
	fmt.Printf("power      %s\n", s.TotalWatt)
	fmt.Printf("UF         %s (%s)\n", s.UF, s.HeightBand)
	return nil
}

func runCatalog(ctx context.Context, client grpcAdapter.LuxServiceClient, args []string) error {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	category := fs.String("category", "", "category to list")
	subtype := fs.String("subtype", "", "subtype within the category")
	_ = fs.Parse(args)

	resp, err := client.ListCatalog(ctx, &grpcAdapter.ListCatalogRequest{Category: *category, Subtype: *subtype})
	if err != nil {
		return err
	}
	if *category != "" && len(resp.Subtypes) > 0 && *subtype == "" {
		fmt.Printf("%s needs a subtype: %s\n", *category, strings.Join(resp.Subtypes, ", "))
		return nil
	}
	for _, t := range resp.Fixtures {
		cts := make([]string, 0, len(t.ColorTemps))
		for _, ct := range t.ColorTemps {
			cts = append(cts, string(ct))
		}
		fmt.Printf("%-45s %6.1f W  %s\n", t.Name, t.Watt, strings.Join(cts, "/"))
	}
	return nil
}

func runPresets(ctx context.Context, client grpcAdapter.LuxServiceClient) error {
	resp, err := client.ListPresets(ctx, &grpcAdapter.ListPresetsRequest{})
	if err != nil {
		return err
	}
	for _, p := range resp.Presets {
		mark := " "
		if p.Name == resp.DefaultPreset {
			mark = "*"
		}
		fmt.Printf("%s %-12s %4d lx\n", mark, p.Name, p.TargetLux)
	}
	return nil
}
