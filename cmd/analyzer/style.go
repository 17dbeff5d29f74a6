package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/poker-hand-analyzer/domain/poker"
	"github.com/luca-patrignani/poker-hand-analyzer/report"
)

func renderBanner() string {
	return pterm.DefaultHeader.WithBackgroundStyle(pterm.BgGreen.ToStyle()).Sprint(report.Banner)
}

func renderHands(hands []poker.Hand) string {
	data := pterm.TableData{{"#", "Hand", "Cards"}}
	for i, h := range hands {
		data = append(data, []string{strconv.Itoa(i + 1), h.String(), h.Symbols()})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return pterm.Error.Sprint(err)
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	return pbox.WithTitle(pterm.LightYellow("|HANDS|")).WithTitleTopCenter().Sprint(table)
}

func renderRanking(r poker.Ranking, describe bool) string {
	header := []string{"Place", "Hand", "Category"}
	if describe {
		header = append(header, "Description")
	}
	data := pterm.TableData{header}
	for i, rh := range r.Ordered {
		row := []string{strconv.Itoa(i + 1), rh.Hand.String(), rh.Category.String()}
		if describe {
			desc, err := poker.Describe(rh.Hand)
			if err != nil {
				desc = "-"
			}
			row = append(row, desc)
		}
		data = append(data, row)
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return pterm.Error.Sprint(err)
	}
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	panels := []pterm.Panel{
		{Data: pbox.WithTitle(pterm.LightGreen("|" + report.RankingHeader + "|")).WithTitleTopCenter().Sprint(table)},
	}
	if winner, ok := r.Winner(); ok {
		info := pterm.Sprintfln("%s wins with %s", pterm.LightCyan(winner.Hand.Symbols()), winner.Category)
		panels = append(panels, pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|WINNER|")).WithTitleTopCenter().Sprint(info)})
	}
	out, err := pterm.DefaultPanel.WithPanels([][]pterm.Panel{panels}).Srender()
	if err != nil {
		return pterm.Error.Sprint(err)
	}
	return out
}
