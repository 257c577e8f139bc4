package domain

// StatCard is a headline indicator on the dashboard.
type StatCard struct {
	Icon       string `json:"icon"`
	Value      string `json:"value"`
	Label      string `json:"label"`
	Change     string `json:"change"`
	ChangeType string `json:"change_type"`
	Color      string `json:"color"`
}

// Activity is an entry of the recent activity feed.
type Activity struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

// Dashboard bundles the static dashboard widgets.
type Dashboard struct {
	Stats       []StatCard `json:"stats"`
	Sales       []int      `json:"sales"`
	Performance []int      `json:"performance"`
	Activities  []Activity `json:"activities"`
}
