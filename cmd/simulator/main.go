package main

import (
	"flag"
	"fmt"
	"os"
)

var donkeyReasons = []string{
	"own goal from the halfway line",
	"missed an open net, twice",
	"forgot his shin pads again",
	"passed to the referee",
	"slept through the warm-up",
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "full":
		fullCmd(apiURL, args)
	case "stats":
		statsCmd(apiURL, args)
	case "votes":
		votesCmd(apiURL, args)
	case "attendance":
		attendanceCmd(apiURL, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Match Simulator - Development tool for testing a full match night

USAGE:
  simulator <command> [options]

COMMANDS:
  full        Create a match, record stats and cast every player's votes
  stats       Record varied stats for every roster player in a match
  votes       Cast MOTM and donkey ballots for every roster player
  attendance  Answer the attendance question for every roster player
  help        Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8080)

EXAMPLES:
  # Full match night: create, stats, votes, results
  simulator full --name="vs Cafe Sport"

  # Fill stats for an existing match by ID or short code
  simulator stats --match=7F2AB3

  # Cast everyone's ballots in an existing match
  simulator votes --match=7F2AB3`)
}

func fullCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("full", flag.ExitOnError)
	name := fs.String("name", "Simulated match", "Match name")
	fs.Parse(args)

	client := NewAPIClient(apiURL)

	fmt.Println("=== Match Simulator: Full Flow ===")
	fmt.Println()

	roster := mustRoster(client)

	// 1. Create the match
	fmt.Print("Creating match... ")
	match, err := client.CreateMatch(*name)
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK (code: %s)\n", match.ShortCode)

	// 2. Record stats for everyone
	recordStats(client, match.ID, roster)

	// 3. Everyone votes
	castVotes(client, match.ID, roster)

	// 4. Fetch and print the results
	fmt.Println()
	fmt.Print("Fetching results... ")
	summary, err := client.GetResults(match.ID)
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("OK")

	printSummary(match, summary)
}

func statsCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	matchRef := fs.String("match", "", "Match ID or short code (required)")
	fs.Parse(args)

	if *matchRef == "" {
		fmt.Println("Error: --match is required")
		fmt.Println("\nUsage: simulator stats --match=7F2AB3")
		os.Exit(1)
	}

	client := NewAPIClient(apiURL)
	match := mustMatch(client, *matchRef)
	roster := mustRoster(client)

	recordStats(client, match.ID, roster)
}

func votesCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("votes", flag.ExitOnError)
	matchRef := fs.String("match", "", "Match ID or short code (required)")
	fs.Parse(args)

	if *matchRef == "" {
		fmt.Println("Error: --match is required")
		fmt.Println("\nUsage: simulator votes --match=7F2AB3")
		os.Exit(1)
	}

	client := NewAPIClient(apiURL)
	match := mustMatch(client, *matchRef)
	roster := mustRoster(client)

	castVotes(client, match.ID, roster)
}

func attendanceCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("attendance", flag.ExitOnError)
	matchRef := fs.String("match", "", "Match ID or short code (required)")
	fs.Parse(args)

	if *matchRef == "" {
		fmt.Println("Error: --match is required")
		fmt.Println("\nUsage: simulator attendance --match=7F2AB3")
		os.Exit(1)
	}

	client := NewAPIClient(apiURL)
	match := mustMatch(client, *matchRef)
	roster := mustRoster(client)

	statuses := []string{"yes", "yes", "maybe", "no"}

	fmt.Printf("Answering attendance for %d players:\n", len(roster))
	for i, p := range roster {
		status := statuses[i%len(statuses)]
		if err := client.SetAttendance(match.ID, p.ID, status); err != nil {
			fmt.Printf("  [%d/%d] FAILED for %s: %v\n", i+1, len(roster), p.Name, err)
			os.Exit(1)
		}
		fmt.Printf("  [%d/%d] %s: %s\n", i+1, len(roster), p.Name, status)
	}
}

func mustRoster(client *APIClient) []Player {
	fmt.Print("Loading roster... ")
	roster, err := client.GetRoster()
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	if len(roster) < 4 {
		fmt.Printf("FAILED\n  Error: need at least 4 roster players, got %d\n", len(roster))
		os.Exit(1)
	}
	fmt.Printf("OK (%d players)\n", len(roster))
	return roster
}

func mustMatch(client *APIClient, idOrCode string) *Match {
	fmt.Printf("Getting match %s... ", idOrCode)
	match, err := client.GetMatch(idOrCode)
	if err != nil {
		fmt.Printf("FAILED\n  Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK (%s)\n", match.Name)
	return match
}

// recordStats gives every player varied goals/assists based on their
// roster position, so results are deterministic across runs.
func recordStats(client *APIClient, matchID string, roster []Player) {
	fmt.Println()
	fmt.Printf("Recording stats for %d players:\n", len(roster))
	for i, p := range roster {
		goals := i % 3
		assists := (i + 1) % 2
		if err := client.SaveStats(matchID, p.ID, goals, assists); err != nil {
			fmt.Printf("  [%d/%d] FAILED for %s: %v\n", i+1, len(roster), p.Name, err)
			os.Exit(1)
		}
		fmt.Printf("  [%d/%d] %s: %dG %dA\n", i+1, len(roster), p.Name, goals, assists)
	}
}

// castVotes has every player submit a full MOTM ballot and a donkey
// pick. Picks rotate through the roster so nobody votes for themselves.
func castVotes(client *APIClient, matchID string, roster []Player) {
	n := len(roster)

	fmt.Println()
	fmt.Printf("Casting ballots for %d voters:\n", n)
	for i, voter := range roster {
		first := roster[(i+1)%n]
		second := roster[(i+2)%n]
		third := roster[(i+3)%n]

		if err := client.SubmitMotm(matchID, voter.ID, first.ID, second.ID, third.ID); err != nil {
			fmt.Printf("  [%d/%d] FAILED motm for %s: %v\n", i+1, n, voter.Name, err)
			os.Exit(1)
		}

		donkey := roster[(i+2)%n]
		reason := donkeyReasons[i%len(donkeyReasons)]
		if err := client.SubmitDonkey(matchID, voter.ID, donkey.ID, reason); err != nil {
			fmt.Printf("  [%d/%d] FAILED donkey for %s: %v\n", i+1, n, voter.Name, err)
			os.Exit(1)
		}

		fmt.Printf("  [%d/%d] %s voted (motm: %s, donkey: %s)\n", i+1, n, voter.Name, first.Name, donkey.Name)
	}
}

func printSummary(match *Match, summary *MatchSummary) {
	fmt.Println()
	fmt.Println("=========================================")
	fmt.Println("  MATCH NIGHT COMPLETE")
	fmt.Println("=========================================")
	fmt.Println()
	fmt.Printf("  Match:      %s\n", match.Name)
	fmt.Printf("  Short Code: %s\n", match.ShortCode)
	fmt.Println()

	if len(summary.MotmRanking) > 0 {
		top := summary.MotmRanking[0]
		fmt.Printf("  Man of the Match:    %s (%d pts)\n", top.Name, top.Score)
	}
	if len(summary.DonkeyRanking) > 0 {
		top := summary.DonkeyRanking[0]
		fmt.Printf("  Donkey of the Match: %s (%d votes)\n", top.Name, top.Score)
	}
	if len(summary.StatsRanking) > 0 {
		top := summary.StatsRanking[0]
		fmt.Printf("  Top Scorer:          %s (%dG %dA)\n", top.Name, top.Goals, top.Assists)
	}
	fmt.Println()
}
