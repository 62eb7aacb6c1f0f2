package main

import (
	"context"
	"fmt"
	"os"

	"github.com/oliverDX1234/news-aggregator/bootstrap"
)

func main() {
	if err := bootstrap.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "news-aggregator: %v\n", err)
		os.Exit(1)
	}
}
