package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"huntboard/internal/analytics"
	"huntboard/internal/config"
	"huntboard/internal/db"
	"huntboard/internal/domain"
	"huntboard/internal/events"
	"huntboard/internal/migrate"
	"huntboard/internal/roles"
	"huntboard/internal/team"
	"huntboard/internal/topology"
	"huntboard/internal/tracker"
)

var rootCmd = &cobra.Command{
	Use:   "hb",
	Short: "Huntboard CLI",
	Long: `Huntboard runs a lightweight, board-style delivery workflow for teams of 1-4.
Core concepts:
- Roles: each member holds exactly one role (scout, architect, builder, sentinel).
- Topology: team size decides the board columns; roles decide who owns each column.
- Hunt: one unit of feature work moving through the columns, one phase at a time,
  never backward, never skipping.
- Metrics: completed hunts feed per-phase duration and quality reports.
All state lives in .huntboard/ under the workspace: team.json, hunts.json,
metrics.json and an append-only event journal.`,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("HUNTBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "workspace directory")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().String("actor-id", "local-user", "actor identifier for the event journal")
	rootCmd.PersistentFlags().Bool("force", false, "force operation")
	_ = viper.BindPFlag("workspace", rootCmd.PersistentFlags().Lookup("workspace"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("actor-id", rootCmd.PersistentFlags().Lookup("actor-id"))
	_ = viper.BindPFlag("force", rootCmd.PersistentFlags().Lookup("force"))
}

func registerCommands() {
	rootCmd.AddCommand(rolesCmd())
	rootCmd.AddCommand(teamCmd())
	rootCmd.AddCommand(huntCmd())
	rootCmd.AddCommand(metricsCmd())
	rootCmd.AddCommand(logCmd())
}

// --- roles ---

func rolesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "roles", Short: "Inspect the role catalog"}
	cmd.AddCommand(rolesListCmd())
	cmd.AddCommand(rolesFindCmd())
	return cmd
}

func rolesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all roles in pipeline order",
		RunE: func(cmd *cobra.Command, args []string) error {
			all := roles.All()
			if viper.GetBool("json") {
				return printJSON(all)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Name", "Symbol", "Keywords"})
			for _, r := range all {
				tw.AppendRow(table.Row{r.ID, r.Name, r.Symbol, strings.Join(r.Keywords, ", ")})
			}
			tw.Render()
			return nil
		},
	}
}

func rolesFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <text>",
		Short: "Find a role by keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := roles.FindByKeyword(args[0])
			if err != nil {
				return err
			}
			return printJSONOrText(r, fmt.Sprintf("%s %s (%s)\n", r.Symbol, r.Name, r.ID))
		},
	}
}

// --- team ---

func teamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage the team configuration",
		Long:  "The team document pins project identity, the roster and the derived board topology. Changing the roster recomputes the topology.",
	}
	cmd.AddCommand(teamInitCmd())
	cmd.AddCommand(teamShowCmd())
	cmd.AddCommand(teamAddCmd())
	cmd.AddCommand(teamRemoveCmd())
	cmd.AddCommand(teamRecommendCmd())
	cmd.AddCommand(teamSetupGitHubCmd())
	return cmd
}

func teamInitCmd() *cobra.Command {
	var name, org, repoName string
	var memberSpecs []string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the team configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := parseMembers(memberSpecs)
			if err != nil {
				return err
			}
			cfgFile, err := config.LoadOptional(viper.GetString("workspace"))
			if err != nil {
				return err
			}
			s := team.NewStore(viper.GetString("workspace"), cfgFile.Policy())
			tc, err := s.Initialize(team.InitOptions{
				Name:    name,
				Org:     org,
				Repo:    repoName,
				Members: members,
				Force:   viper.GetBool("force"),
			})
			if err != nil {
				return err
			}
			emitJournal(cmd.Context(), cfgFile, events.Event{
				Type:       events.TeamInitialized,
				EntityKind: "team",
				EntityID:   tc.Name,
				Payload:    events.Payload{"team_size": tc.TeamSize},
			})
			return printTeam(tc)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringVar(&org, "org", "", "hosting organization")
	cmd.Flags().StringVar(&repoName, "repo", "", "hosting repository")
	cmd.Flags().StringArrayVar(&memberSpecs, "member", []string{}, "member as username:role (repeatable)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("member")
	return cmd
}

func teamShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the team configuration and board topology",
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, _, err := requireTeam()
			if err != nil {
				return err
			}
			return printTeam(tc)
		},
	}
}

func teamAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <username> <role>",
		Short: "Add a member to the roster",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, err := config.LoadOptional(viper.GetString("workspace"))
			if err != nil {
				return err
			}
			role, err := resolveRole(args[1])
			if err != nil {
				return err
			}
			s := team.NewStore(viper.GetString("workspace"), cfgFile.Policy())
			tc, err := s.AddMember(args[0], role)
			if err != nil {
				return err
			}
			emitJournal(cmd.Context(), cfgFile, events.Event{
				Type:       events.TeamMemberAdded,
				EntityKind: "team",
				EntityID:   args[0],
				Payload:    events.Payload{"role": role, "team_size": tc.TeamSize},
			})
			return printTeam(tc)
		},
	}
}

func teamRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <username>",
		Short: "Remove a member from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, err := config.LoadOptional(viper.GetString("workspace"))
			if err != nil {
				return err
			}
			s := team.NewStore(viper.GetString("workspace"), cfgFile.Policy())
			tc, err := s.RemoveMember(args[0])
			if err != nil {
				return err
			}
			emitJournal(cmd.Context(), cfgFile, events.Event{
				Type:       events.TeamMemberRemoved,
				EntityKind: "team",
				EntityID:   args[0],
				Payload:    events.Payload{"team_size": tc.TeamSize},
			})
			return printTeam(tc)
		},
	}
}

func teamRecommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Show advisory roster recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, s, err := requireTeam()
			if err != nil {
				return err
			}
			recs, err := s.Recommendations()
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(recs)
			}
			if len(recs) == 0 {
				fmt.Println("Roster looks complete.")
				return nil
			}
			for _, r := range recs {
				fmt.Println("-", r)
			}
			return nil
		},
	}
}

func teamSetupGitHubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup-github",
		Short: "Print the manual GitHub board setup steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, _, err := requireTeam()
			if err != nil {
				return err
			}
			out, err := topology.GitHubSetupInstructions(tc.TeamSize, tc.Members)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}

// --- hunt ---

func huntCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hunt",
		Short: "Manage hunts",
		Long:  "A hunt is one unit of feature work. It starts at the first board phase and moves forward one phase at a time until completed.",
	}
	cmd.AddCommand(huntStartCmd())
	cmd.AddCommand(huntMoveCmd())
	cmd.AddCommand(huntCompleteCmd())
	cmd.AddCommand(huntShowCmd())
	cmd.AddCommand(huntListCmd())
	cmd.AddCommand(huntStatusCmd())
	return cmd
}

func huntStartCmd() *cobra.Command {
	var feature, description string
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a hunt at the first phase",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd.Context(), func(tr *tracker.Tracker, tc *domain.TeamConfig) error {
				h, err := tr.StartHunt(feature, description, tc.Workflow.Sequence, tc.Workflow.MemberMapping)
				if err != nil {
					return err
				}
				return printHunt(h)
			})
		},
	}
	cmd.Flags().StringVar(&feature, "feature", "", "feature name")
	cmd.Flags().StringVar(&description, "description", "", "description")
	_ = cmd.MarkFlagRequired("feature")
	return cmd
}

func huntMoveCmd() *cobra.Command {
	var to, assignee string
	cmd := &cobra.Command{
		Use:   "move <hunt-id>",
		Short: "Move a hunt to its next phase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd.Context(), func(tr *tracker.Tracker, tc *domain.TeamConfig) error {
				target := to
				if target == "" {
					h, err := tr.Hunt(args[0])
					if err != nil {
						return err
					}
					target = nextPhase(h)
				}
				owner := assignee
				if owner == "" {
					owner = tc.Workflow.Assignee(target)
				}
				h, err := tr.TransitionHunt(args[0], target, owner)
				if err != nil {
					return err
				}
				return printHunt(h)
			})
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "target phase (defaults to the next phase)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "assignee (defaults to the phase owner)")
	return cmd
}

func huntCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <hunt-id>",
		Short: "Complete a hunt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withTracker(cmd.Context(), func(tr *tracker.Tracker, tc *domain.TeamConfig) error {
				h, err := tr.CompleteHunt(args[0])
				if err != nil {
					return err
				}
				return printHunt(h)
			})
		},
	}
}

func huntShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <hunt-id>",
		Short: "Show a hunt with its phase timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, _, err := loadTracker()
			if err != nil {
				return err
			}
			h, err := tr.Hunt(args[0])
			if err != nil {
				return err
			}
			total, err := tr.TotalDurationMinutes(args[0])
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(map[string]any{"hunt": h, "total_minutes": total})
			}
			fmt.Printf("%s  %s [%s]\n", h.ID, h.FeatureName, h.Status)
			if h.Description != "" {
				fmt.Println(h.Description)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Phase", "Entered", "Assignee", "Minutes"})
			for _, e := range h.PhaseHistory {
				minutes := "open"
				if e.Closed {
					minutes = fmt.Sprintf("%.1f", e.DurationMinutes)
				}
				tw.AppendRow(table.Row{e.Phase, e.EnteredAt.Format("2006-01-02 15:04"), e.Assignee, minutes})
			}
			tw.Render()
			fmt.Printf("Total: %.1f minutes\n", total)
			return nil
		},
	}
}

func huntListCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List hunts",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, _, err := loadTracker()
			if err != nil {
				return err
			}
			hunts := tr.ActiveHunts()
			if all {
				hunts = tr.AllHunts()
			}
			if viper.GetBool("json") {
				return printJSON(hunts)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Feature", "Status", "Phase", "Created"})
			for _, h := range hunts {
				tw.AppendRow(table.Row{h.ID, h.FeatureName, h.Status, h.CurrentPhase, h.CreatedAt.Format("2006-01-02")})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include completed hunts")
	return cmd
}

func huntStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the board: columns, owners and in-flight hunts",
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, _, err := requireTeam()
			if err != nil {
				return err
			}
			tr, _, err := loadTracker()
			if err != nil {
				return err
			}
			active := tr.ActiveHunts()
			perPhase := map[string][]string{}
			for _, h := range active {
				perPhase[h.CurrentPhase] = append(perPhase[h.CurrentPhase], h.FeatureName)
			}
			if viper.GetBool("json") {
				return printJSON(map[string]any{"workflow": tc.Workflow, "active": active})
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Column", "Owner", "Hunts"})
			for _, c := range tc.Workflow.Columns {
				owner := tc.Workflow.Assignee(c.ID)
				if owner == "" {
					owner = "unassigned"
				}
				tw.AppendRow(table.Row{c.Name, owner, strings.Join(perPhase[c.ID], ", ")})
			}
			tw.Render()
			return nil
		},
	}
}

// --- metrics ---

func metricsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "metrics", Short: "Record and report hunt metrics"}
	cmd.AddCommand(metricsRecordCmd())
	cmd.AddCommand(metricsReportCmd())
	return cmd
}

func metricsRecordCmd() *cobra.Command {
	var huntID string
	var quality float64
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record metrics for a completed hunt",
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, _, err := requireTeam()
			if err != nil {
				return err
			}
			tr, _, err := loadTracker()
			if err != nil {
				return err
			}
			h, err := tr.Hunt(huntID)
			if err != nil {
				return err
			}
			s, err := analytics.Load(tc.Name, viper.GetString("workspace"))
			if err != nil {
				return err
			}
			q := analytics.QualityUnset
			if cmd.Flags().Changed("quality") {
				q = quality
			}
			r, err := s.RecordFromHunt(h, tc.TeamSize, q)
			if err != nil {
				return err
			}
			if err := s.Save(); err != nil {
				return err
			}
			cfgFile, err := config.LoadOptional(viper.GetString("workspace"))
			if err != nil {
				return err
			}
			emitJournal(cmd.Context(), cfgFile, events.Event{
				Type:       events.MetricsRecorded,
				EntityKind: "metrics",
				EntityID:   r.HuntID,
				Payload:    events.Payload{"team_size": r.TeamSize, "quality": r.Quality},
			})
			return printJSON(r)
		},
	}
	cmd.Flags().StringVar(&huntID, "hunt", "", "hunt id")
	cmd.Flags().Float64Var(&quality, "quality", 0, "quality score in [0,1]")
	_ = cmd.MarkFlagRequired("hunt")
	return cmd
}

func metricsReportCmd() *cobra.Command {
	var markdown bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate recorded metrics into a team report",
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, _, err := requireTeam()
			if err != nil {
				return err
			}
			s, err := analytics.Load(tc.Name, viper.GetString("workspace"))
			if err != nil {
				return err
			}
			report := s.TeamReport()
			if viper.GetBool("json") {
				return printJSON(report)
			}
			if markdown {
				fmt.Print(analytics.FormatReportMarkdown(report))
				return nil
			}
			if report.TotalHunts == 0 {
				fmt.Println("No hunts recorded yet.")
				return nil
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Phase", "Avg minutes"})
			for phase, avg := range report.PhaseAverages {
				tw.AppendRow(table.Row{phase, fmt.Sprintf("%.1f", avg)})
			}
			tw.Render()
			if report.QualitySamples > 0 {
				fmt.Printf("Average quality: %.2f (%d scored)\n", report.AverageQuality, report.QualitySamples)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "render as markdown")
	return cmd
}

// --- log ---

func logCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "log", Short: "Read the event journal"}
	cmd.AddCommand(logTailCmd())
	return cmd
}

func logTailCmd() *cobra.Command {
	var n int
	var evtType, entityKind, entityID string
	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Tail journal events",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, err := config.LoadOptional(viper.GetString("workspace"))
			if err != nil {
				return err
			}
			if n == 0 {
				n = cfgFile.Journal.Tail
			}
			conn, err := openJournal()
			if err != nil {
				return err
			}
			defer conn.Close()
			rows, err := events.Journal{DB: conn}.Tail(cmd.Context(), n, evtType, entityKind, entityID)
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(rows)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"TS", "Type", "Entity", "Actor", "Payload"})
			for _, r := range rows {
				tw.AppendRow(table.Row{r.TS, r.Type, r.EntityKind + "/" + r.EntityID, r.ActorID, r.Payload})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 0, "number of events (default from huntboard.yml)")
	cmd.Flags().StringVar(&evtType, "type", "", "event type filter")
	cmd.Flags().StringVar(&entityKind, "entity-kind", "", "entity kind filter")
	cmd.Flags().StringVar(&entityID, "entity-id", "", "entity id filter")
	return cmd
}

// --- helpers ---

func requireTeam() (*domain.TeamConfig, *team.Store, error) {
	cfgFile, err := config.LoadOptional(viper.GetString("workspace"))
	if err != nil {
		return nil, nil, err
	}
	s := team.NewStore(viper.GetString("workspace"), cfgFile.Policy())
	tc, err := s.Load()
	if err != nil {
		return nil, nil, err
	}
	if tc == nil {
		return nil, nil, fmt.Errorf("no team configured; run 'hb team init' first")
	}
	return tc, s, nil
}

func loadTracker() (*tracker.Tracker, *domain.TeamConfig, error) {
	tc, _, err := requireTeam()
	if err != nil {
		return nil, nil, err
	}
	tr, err := tracker.Load(viper.GetString("workspace"))
	if err != nil {
		return nil, nil, err
	}
	return tr, tc, nil
}

// withTracker loads the team and tracker, wires the journal observer, runs
// fn and saves the tracker when fn succeeds.
func withTracker(ctx context.Context, fn func(*tracker.Tracker, *domain.TeamConfig) error) error {
	tr, tc, err := loadTracker()
	if err != nil {
		return err
	}
	cfgFile, err := config.LoadOptional(viper.GetString("workspace"))
	if err != nil {
		return err
	}
	if cfgFile.Journal.Enabled {
		conn, err := openJournal()
		if err != nil {
			return err
		}
		defer conn.Close()
		w := events.Writer{DB: conn}
		actor := viper.GetString("actor-id")
		tr.Subscribe(func(e events.Event) {
			if e.ActorID == "" {
				e.ActorID = actor
			}
			// Fire and forget: a journal failure never undoes the change.
			if err := w.Append(ctx, e); err != nil {
				fmt.Fprintln(os.Stderr, "journal:", err)
			}
		})
	}
	if err := fn(tr, tc); err != nil {
		return err
	}
	return tr.Save(viper.GetString("workspace"))
}

func openJournal() (*sql.DB, error) {
	conn, err := db.Open(viper.GetString("workspace"))
	if err != nil {
		return nil, err
	}
	if err := migrate.Migrate(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

// emitJournal appends a single event outside the tracker path, best effort.
func emitJournal(ctx context.Context, cfgFile *config.Config, e events.Event) {
	if !cfgFile.Journal.Enabled {
		return
	}
	conn, err := openJournal()
	if err != nil {
		fmt.Fprintln(os.Stderr, "journal:", err)
		return
	}
	defer conn.Close()
	if e.ActorID == "" {
		e.ActorID = viper.GetString("actor-id")
	}
	if err := (events.Writer{DB: conn}).Append(ctx, e); err != nil {
		fmt.Fprintln(os.Stderr, "journal:", err)
	}
}

func parseMembers(specs []string) ([]domain.Member, error) {
	members := make([]domain.Member, 0, len(specs))
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid --member %q, expected username:role", spec)
		}
		role, err := resolveRole(parts[1])
		if err != nil {
			return nil, err
		}
		members = append(members, domain.Member{Username: parts[0], Role: role})
	}
	return members, nil
}

// resolveRole accepts an exact role id or a keyword (e.g. "qa" -> sentinel).
func resolveRole(text string) (string, error) {
	if _, err := roles.Get(text); err == nil {
		return text, nil
	}
	r, err := roles.FindByKeyword(text)
	if err != nil {
		return "", err
	}
	return r.ID, nil
}

func nextPhase(h domain.Hunt) string {
	for i, p := range h.Sequence {
		if p == h.CurrentPhase && i+1 < len(h.Sequence) {
			return h.Sequence[i+1]
		}
	}
	return ""
}

func printTeam(tc *domain.TeamConfig) error {
	if viper.GetBool("json") {
		return printJSON(tc)
	}
	fmt.Printf("Project: %s", tc.Name)
	if tc.Org != "" || tc.Repo != "" {
		fmt.Printf(" (%s/%s)", tc.Org, tc.Repo)
	}
	fmt.Printf("  team size %d\n", tc.TeamSize)
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Column", "Owner"})
	for _, c := range tc.Workflow.Columns {
		owner := tc.Workflow.Assignee(c.ID)
		if owner == "" {
			owner = "unassigned"
		}
		tw.AppendRow(table.Row{c.Name, owner})
	}
	tw.Render()
	return nil
}

func printHunt(h domain.Hunt) error {
	if viper.GetBool("json") {
		return printJSON(h)
	}
	assignee := ""
	for i := len(h.PhaseHistory) - 1; i >= 0; i-- {
		if h.PhaseHistory[i].Phase == h.CurrentPhase {
			assignee = h.PhaseHistory[i].Assignee
			break
		}
	}
	fmt.Printf("%s  %s [%s] phase=%s assignee=%s\n", h.ID, h.FeatureName, h.Status, h.CurrentPhase, assignee)
	return nil
}

func printJSONOrText(v any, text string) error {
	if viper.GetBool("json") {
		return printJSON(v)
	}
	fmt.Print(text)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
