package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/dokoclub/dokolator/internal/common/clock"
	"github.com/dokoclub/dokolator/internal/common/uuid"
	"github.com/dokoclub/dokolator/internal/models"
	handRepo "github.com/dokoclub/dokolator/internal/repositories/hand"
	sessionRepo "github.com/dokoclub/dokolator/internal/repositories/session"
	"github.com/dokoclub/dokolator/internal/scoring"
	"github.com/dokoclub/dokolator/internal/services/scorekeeper"
)

// journal is the JSON file format the replay command consumes: one game day
// with its roster and the hands in the order they were played.
type journal struct {
	Owner      string        `json:"owner"`
	Date       string        `json:"date"`
	Stake      *float64      `json:"stake"`
	PointValue *float64      `json:"point_value"`
	Players    []string      `json:"players"`
	Hands      []journalHand `json:"hands"`
	Complete   bool          `json:"complete"`
}

// journalHand is one submitted hand. Roles maps player names to wire role
// tokens ("geber", "re", "solo", "hochzeit", "geber+re", ...); marriage hands
// are expressed entirely through the tokens.
type journalHand struct {
	Roles       map[string]string `json:"roles"`
	Value       int               `json:"value"`
	BockTrigger bool              `json:"bock_trigger"`
}

func main() {
	// Load .env if present; real environment variables win
	_ = godotenv.Load()

	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <journal.json>", os.Args[0])
	}

	j, err := readJournal(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read journal: %v", err)
	}

	stake := getEnvFloat("DOKO_STARTGELD", 10)
	if j.Stake != nil {
		stake = *j.Stake
	}
	pointValue := getEnvFloat("DOKO_PUNKTWERT", 0.05)
	if j.PointValue != nil {
		pointValue = *j.PointValue
	}

	date := time.Time{}
	if j.Date != "" {
		date, err = time.Parse("2006-01-02", j.Date)
		if err != nil {
			log.Fatalf("Invalid date %q: %v", j.Date, err)
		}
	}

	svc, err := scorekeeper.New(&scorekeeper.Config{
		SessionRepo:   sessionRepo.NewMemory(),
		HandRepo:      handRepo.NewMemory(),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create scorekeeper service: %v", err)
	}

	ctx := context.Background()

	owner := j.Owner
	if owner == "" {
		owner = getEnv("DOKO_OWNER", "local")
	}

	created, err := svc.CreateSession(ctx, &scorekeeper.CreateSessionInput{
		OwnerID:     owner,
		Date:        date,
		Stake:       stake,
		PointValue:  pointValue,
		PlayerNames: j.Players,
	})
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	session := created.Session

	for i, h := range j.Hands {
		roles := make(map[string]scoring.RoleToken, len(h.Roles))
		for name, token := range h.Roles {
			parsed, err := scoring.ParseRoleToken(token)
			if err != nil {
				log.Fatalf("Hand %d: %v", i+1, err)
			}
			roles[name] = parsed
		}

		if _, err := svc.RecordHand(ctx, &scorekeeper.RecordHandInput{
			SessionID:   session.ID,
			Roles:       roles,
			Value:       h.Value,
			BockTrigger: h.BockTrigger,
		}); err != nil {
			log.Fatalf("Hand %d: %v", i+1, err)
		}
	}

	if j.Complete {
		if _, err := svc.CompleteSession(ctx, &scorekeeper.CompleteSessionInput{SessionID: session.ID}); err != nil {
			log.Fatalf("Failed to complete session: %v", err)
		}
	}

	stats, err := svc.GetSessionStats(ctx, &scorekeeper.GetSessionStatsInput{SessionID: session.ID})
	if err != nil {
		log.Fatalf("Failed to load session stats: %v", err)
	}

	printHands(stats)
	printSettlement(stats)
	printPlayerStats(ctx, svc, owner)
}

// printHands renders the score sheet: one row per hand record with the
// running totals underneath
func printHands(stats *scorekeeper.GetSessionStatsOutput) {
	session := stats.Session

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Nr\tBock\tWert\t")
	for _, name := range session.PlayerNames {
		fmt.Fprintf(w, "%s\t", name)
	}
	fmt.Fprintln(w)

	// Replay the streak display alongside the stored rows
	bock := replayBockDisplays(stats)

	totals := make(map[string]int, len(session.PlayerNames))
	for i, h := range stats.Hands {
		label := strconv.Itoa(h.HandNumber)
		if h.Phase != "" {
			label += " " + string(h.Phase)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t", label, bock[i], h.Value)
		for _, name := range session.PlayerNames {
			score := h.Players[name]
			totals[name] += score.Points
			fmt.Fprintf(w, "%d\t", score.Points)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\t\tSumme\t")
	for _, name := range session.PlayerNames {
		fmt.Fprintf(w, "%d\t", totals[name])
	}
	fmt.Fprintln(w)
}

// replayBockDisplays reconstructs the per-row streak column from the stored
// hands, the same way the hands were scored: search rows inherit the display
// of their hand number without consuming a streak slot.
func replayBockDisplays(stats *scorekeeper.GetSessionStatsOutput) []string {
	tableSize := len(stats.Session.PlayerNames)
	displays := make([]string, 0, len(stats.Hands))

	state := models.BockState{}
	for _, h := range stats.Hands {
		wasBock := state.Active > 0
		displays = append(displays, scoring.FormatBockDisplay(wasBock, state.PlayedInStreak+1, state.TotalInStreak))
		if h.Phase != models.HandPhaseSearch {
			state = scoring.AdvanceBock(state, wasBock, h.BockTrigger, tableSize)
		}
	}
	return displays
}

// printSettlement renders the per-player payout table
func printSettlement(stats *scorekeeper.GetSessionStatsOutput) {
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "Spieler\tPunkte\tZahlt\tDifferenz")
	for _, name := range stats.Session.PlayerNames {
		entry := stats.Settlement[name]
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%+.2f\n", name, entry.Points, entry.Money, entry.GainLoss)
	}
}

// printPlayerStats renders the cross-session statistics of the owner
func printPlayerStats(ctx context.Context, svc scorekeeper.Service, owner string) {
	output, err := svc.GetPlayerStats(ctx, &scorekeeper.GetPlayerStatsInput{OwnerID: owner})
	if err != nil {
		log.Fatalf("Failed to load player stats: %v", err)
	}

	fmt.Println()
	fmt.Printf("Spieltage: %d (%d offen, %d abgeschlossen), Spiele: %d\n",
		output.TotalSpieltage, output.ActiveSpieltage, output.CompletedSpieltage, output.TotalGames)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "Spieler\tSpiele\tPunkte\tSchnitt\tKasse")
	for _, entry := range output.Stats {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t%.2f\n",
			entry.PlayerName, entry.TotalGames, entry.TotalPoints, entry.AveragePoints, entry.TotalMoney)
	}
}

func readJournal(path string) (*journal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var j journal
	if err := json.NewDecoder(f).Decode(&j); err != nil {
		return nil, err
	}
	return &j, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvFloat gets a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("Invalid %s value %q: %v", key, value, err)
	}
	return parsed
}
