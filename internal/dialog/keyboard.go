package dialog

import "github.com/asccclass/jadualbot/internal/schedule"

// Keyboards are plain label grids; the transport turns them into one-time,
// resized Telegram reply keyboards.

func roleKeyboard() [][]string {
	return [][]string{{labelRoleAdmin, labelRoleStaff}}
}

func menuKeyboard() [][]string {
	return [][]string{
		{labelMenuUpdate, labelMenuDelete},
		{labelMenuDone},
	}
}

func yesNoKeyboard() [][]string {
	return [][]string{{labelYes, labelNo}}
}

func officerKeyboard(officers []schedule.Officer) [][]string {
	rows := make([][]string, 0, len(officers))
	for _, o := range officers {
		rows = append(rows, []string{o.Label})
	}
	return rows
}

func locationKeyboard() [][]string {
	return [][]string{{schedule.LocationKeningau, schedule.LocationLuarDaerah}}
}

func membershipKeyboard() [][]string {
	return [][]string{{schedule.MembershipMember, schedule.MembershipNonMember}}
}

func postCheckKeyboard() [][]string {
	return [][]string{
		{labelCheckOther},
		{labelChangeDate, labelCheckFinish},
	}
}

func candidateKeyboard(recs []schedule.Record) [][]string {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{r.DeleteLabel()})
	}
	return rows
}
