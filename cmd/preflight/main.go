// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	admin := strings.TrimSpace(os.Getenv("ADMIN_API_KEYS"))
	pub := strings.TrimSpace(os.Getenv("PUBLIC_API_KEYS"))
	apiAddr := strings.TrimSpace(os.Getenv("API_ADDR"))
	db := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	conc := strings.TrimSpace(os.Getenv("MAX_CONCURRENT"))

	if admin == "" {
		fail("ADMIN_API_KEYS is empty (POST /api/checks will 403).")
	}
	if pub == "" {
		warn("PUBLIC_API_KEYS is empty (batch read routes are open to admin keys only).")
	}

	// Normalize and sanity-check lists (no spaces around commas).
	for name, v := range map[string]string{"ADMIN_API_KEYS": admin, "PUBLIC_API_KEYS": pub} {
		if strings.Contains(v, " ") {
			warn(name + " contains spaces; use comma-separated with no spaces, e.g. key1,key2")
		}
	}

	if apiAddr == "" {
		warn("API_ADDR is empty; the default bind address will be used.")
	} else {
		ok("API_ADDR=" + apiAddr)
	}

	if db == "" {
		warn("DATABASE_URL empty — batches will be archived in memory only.")
	} else {
		ok("DATABASE_URL present")
	}

	if conc != "" {
		if n, err := strconv.Atoi(conc); err != nil || n < 1 {
			fail("MAX_CONCURRENT must be a positive integer, got " + conc)
		} else if n > 200 {
			warn("MAX_CONCURRENT=" + conc + " is very high; probed hosts may rate limit you.")
		}
	}

	ok("preflight passed")
}
