package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"printshop-core/internal/app"
	"printshop-core/internal/config"
	"printshop-core/internal/core"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	pricing := core.NewPricingServiceWith(cfg.LaborRate(), core.ParseCategory(cfg.DefaultCategory))
	svc := app.NewService(pricing, cfg.RunSizes)

	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "price":
		req := loadRequest(requireArg(2, "Usage: quote price <request.json>"))
		result, err := svc.PriceQuote(req)
		if err != nil {
			log.Fatalf("Pricing failed: %v", err)
		}
		printJSON(result)

	case "breaks":
		req := loadRequest(requireArg(2, "Usage: quote breaks <request.json>"))
		breaks, err := svc.PriceQuantityBreaks(req)
		if err != nil {
			log.Fatalf("Pricing failed: %v", err)
		}
		printJSON(breaks)

	case "workorder":
		status := requireArg(2, "Usage: quote workorder <status> [due-date RFC3339]")
		var due *time.Time
		if len(os.Args) > 3 {
			parsed, err := time.Parse(time.RFC3339, os.Args[3])
			if err != nil {
				log.Fatalf("Invalid due date %q: %v", os.Args[3], err)
			}
			due = &parsed
		}
		facts, err := svc.DescribeWorkOrder(status, due, time.Now())
		if err != nil {
			log.Fatalf("Work order lookup failed: %v", err)
		}
		printJSON(facts)

	case "schema":
		printJSON(app.QuoteRequestSchema())

	default:
		usage()
	}
}

func requireArg(i int, msg string) string {
	if len(os.Args) <= i {
		log.Fatal(msg)
	}
	return os.Args[i]
}

func loadRequest(path string) app.QuoteRequest {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read request file: %v", err)
	}
	var req app.QuoteRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		log.Fatalf("Failed to parse request file: %v", err)
	}
	return req
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
	fmt.Println(string(out))
}

func usage() {
	fmt.Println(`Usage:
  quote price <request.json>              price one job
  quote breaks <request.json>             price a job across standard run sizes
  quote workorder <status> [due RFC3339]  show derived work order facts
  quote schema                            print the quote request JSON schema`)
}
