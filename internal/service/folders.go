package service

import (
	"sort"
	"time"

	"github.com/jacoagency/productivity/internal/model"
)

// Folder is one node of the sidebar navigation tree: the synthetic Today
// bucket, a month folder with day subfolders, or a day subfolder.
type Folder struct {
	Name  string       `json:"name"`
	Type  string       `json:"type"` // day, month or year
	Date  string       `json:"date"`
	Tasks []model.Task `json:"tasks"`
	Days  []Folder     `json:"days,omitempty"`
}

// OrganizeFolders buckets a flat task list into the navigation tree: a
// "Today" folder with every task due on the current calendar day, then one
// folder per remaining year-month with day subfolders nested inside. Month
// folders aggregate all nested tasks. Today is pinned first; months and day
// subfolders are sorted descending by date key. Pure function of the task
// list and now, so repeated calls yield an identical tree.
func OrganizeFolders(tasks []model.Task, now time.Time) []Folder {
	today := now.Format("2006-01-02")

	todayFolder := Folder{
		Name:  "Today",
		Type:  model.FolderDay,
		Date:  today,
		Tasks: []model.Task{},
	}
	organized := []Folder{todayFolder}

	monthIndex := map[string]int{}

	for _, task := range tasks {
		if task.DueDate == nil {
			continue
		}
		due := *task.DueDate
		dayKey := due.Format("2006-01-02")
		if dayKey == today {
			organized[0].Tasks = append(organized[0].Tasks, task)
			continue
		}
		monthKey := due.Format("2006-01")

		idx, ok := monthIndex[monthKey]
		if !ok {
			organized = append(organized, Folder{
				Name:  due.Format("January 2006"),
				Type:  model.FolderMonth,
				Date:  monthKey,
				Tasks: []model.Task{},
				Days:  []Folder{},
			})
			idx = len(organized) - 1
			monthIndex[monthKey] = idx
		}
		month := &organized[idx]

		dayIdx := -1
		for i := range month.Days {
			if month.Days[i].Date == dayKey {
				dayIdx = i
				break
			}
		}
		if dayIdx == -1 {
			month.Days = append(month.Days, Folder{
				Name:  due.Format("Monday, January 2"),
				Type:  model.FolderDay,
				Date:  dayKey,
				Tasks: []model.Task{},
			})
			dayIdx = len(month.Days) - 1
		}

		month.Days[dayIdx].Tasks = append(month.Days[dayIdx].Tasks, task)
		month.Tasks = append(month.Tasks, task)
	}

	sort.SliceStable(organized, func(i, j int) bool {
		if organized[i].Date == today && organized[i].Name == "Today" {
			return true
		}
		if organized[j].Date == today && organized[j].Name == "Today" {
			return false
		}
		return organized[i].Date > organized[j].Date
	})
	for i := range organized {
		days := organized[i].Days
		sort.SliceStable(days, func(a, b int) bool {
			return days[a].Date > days[b].Date
		})
	}

	return organized
}
