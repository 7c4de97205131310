package cmd

import (
	"context"
	"fmt"
	"strconv"

	"pokerledger/database"
	"pokerledger/domain/entities"
	"pokerledger/domain/ledger"
	"pokerledger/repository"

	"github.com/jackc/pgx/v5"
	"github.com/pterm/pterm"
)

// ReportCmd prints the settlement and round statistics of a game
type ReportCmd struct {
	GameID int64 `arg:"" name:"game-id" help:"Game to report on"`
}

// gameReport is everything the report prints, read from one snapshot
type gameReport struct {
	game    *entities.Game
	results []*entities.GameResult
}

func (c *ReportCmd) Run() error {
	ctx := context.Background()

	db, err := database.NewConnection(ctx, database.EnvDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	report, err := loadReport(ctx, db, c.GameID)
	if err != nil {
		return err
	}

	printReport(report)
	return nil
}

func loadReport(ctx context.Context, db *database.DB, gameID int64) (*gameReport, error) {
	report := &gameReport{}
	err := db.ReadOnly(ctx, func(tx pgx.Tx) error {
		repos := repository.NewRepositories(tx)

		game, err := repos.Games.GetByID(ctx, gameID)
		if err != nil {
			return fmt.Errorf("failed to load game: %w", err)
		}
		if game == nil {
			return fmt.Errorf("game %d not found", gameID)
		}
		report.game = game

		if game.IsFinished() {
			report.results, err = repos.Results.GetByGameID(ctx, gameID)
			if err != nil {
				return fmt.Errorf("failed to load results: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

func printReport(report *gameReport) {
	game := report.game

	pterm.DefaultHeader.WithFullWidth().Printfln("#%d %s", game.ID, game.Name)
	pterm.Info.Printfln("Status %s · blinds %d/%d · stack %d · %g ₽/chip · %d rounds · %s",
		game.Status, game.Settings.SmallBlind, game.Settings.BigBlind, game.Settings.StartingStack,
		game.Settings.ChipToRuble, len(game.Rounds), ledger.FormatElapsed(game.Duration()))
	pterm.Println()

	if len(report.results) > 0 {
		data := pterm.TableData{{"Player", "Buy-ins", "Paid ₽", "Final chips", "Final ₽", "Profit ₽"}}
		for _, r := range report.results {
			data = append(data, []string{
				r.PlayerName,
				strconv.Itoa(r.BuyInCount),
				fmt.Sprintf("%.2f", r.BuyInRubles),
				strconv.FormatInt(r.FinalChips, 10),
				fmt.Sprintf("%.2f", r.FinalRubles),
				profitCell(r.Profit),
			})
		}
		pterm.DefaultSection.Println("Settlement")
		_ = pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render()
	} else if game.IsFinished() {
		pterm.Warning.Println("Game is finished but has no stored results")
	}

	winners := ledger.WinnerStats(game.Rounds)
	if len(winners) == 0 {
		pterm.Warning.Println("No rounds recorded")
		return
	}

	winnerData := pterm.TableData{{"Player", "Wins", "%"}}
	for _, w := range winners {
		winnerData = append(winnerData, []string{w.Name, strconv.Itoa(w.Wins), strconv.Itoa(w.Percentage)})
	}
	pterm.DefaultSection.Println("Winners")
	_ = pterm.DefaultTable.WithHasHeader().WithData(winnerData).Render()

	bars := pterm.Bars{}
	for _, c := range ledger.CombinationStats(game.Rounds) {
		bars = append(bars, pterm.Bar{Label: c.Combination.Label(), Value: c.Count})
	}
	pterm.DefaultSection.Println("Combinations")
	_ = pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Render()

	dealerData := pterm.TableData{{"Player", "Best dealer(s)", "Wins", "%"}}
	for _, d := range ledger.BestDealerStats(game.Players, game.Rounds) {
		dealerData = append(dealerData, []string{d.Player, d.DealersLabel(), strconv.Itoa(d.Wins), strconv.Itoa(d.Percentage)})
	}
	pterm.DefaultSection.Println("Luckiest dealers")
	_ = pterm.DefaultTable.WithHasHeader().WithData(dealerData).Render()
}

func profitCell(profit float64) string {
	switch {
	case profit > 0:
		return pterm.Green(fmt.Sprintf("+%.2f", profit))
	case profit < 0:
		return pterm.Red(fmt.Sprintf("%.2f", profit))
	default:
		return "0.00"
	}
}
