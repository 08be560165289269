package cmd

import (
	"fmt"
	"os"

	"github.com/neperme-a11y/brand-reputation-monitor/internal/models"
)

// printProductsTable prints catalog entries in a human-friendly layout.
func printProductsTable(products []models.Product) {
	for i, p := range products {
		if i > 0 {
			fmt.Fprintln(os.Stdout)
		}
		fmt.Fprintf(os.Stdout, " %d. %s\n", i+1, p.Name)
		fmt.Fprintf(os.Stdout, "    Price: %s  |  ID: %s\n", displayPrice(p.Price), p.ID)
		fmt.Fprintf(os.Stdout, "    %s\n", p.URL)
	}
}

// printReviewsTable prints normalized reviews as compact one-liners.
func printReviewsTable(reviews []models.Review) {
	for i, r := range reviews {
		line := fmt.Sprintf(" %d. [%s]", i+1, r.Date)
		if r.Rating != nil {
			line += fmt.Sprintf(" %v*", r.Rating)
		}
		if r.ProductID != "" {
			line += " product=" + r.ProductID
		}
		line += " (" + r.Source + ")"
		fmt.Fprintln(os.Stdout, line)
		fmt.Fprintf(os.Stdout, "    %s\n", truncate(r.Text, 100))
	}
}

func printTestimonialsTable(testimonials []models.Testimonial) {
	for i, t := range testimonials {
		fmt.Fprintf(os.Stdout, " %d. %s\n", i+1, truncate(t.Comment, 100))
	}
}

func displayPrice(price string) string {
	if price == "" {
		return "n/a"
	}
	return "$" + price
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
