package cmd

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/webcraft/internals/cmdlog"
	"github.com/minepkg/webcraft/internals/commands"
	"github.com/minepkg/webcraft/pkg/webcraft"
	"github.com/spf13/cobra"
	"github.com/stoewer/go-strcase"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func init() {
	runner := &endpointsRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "endpoints [group]",
		Short: "Lists all API operations (to be used with `webcraft call`)",
		Args:  cobra.MaximumNArgs(1),
	}, runner)

	rootCmd.AddCommand(cmd.Command)
}

type endpointsRunner struct{}

type endpointInfo struct {
	Operation string   `json:"operation"`
	Command   string   `json:"command"`
	Method    string   `json:"method"`
	Path      string   `json:"path"`
	Params    []string `json:"params"`
	Body      []string `json:"body,omitempty"`
	Response  string   `json:"response"`
}

func describeEndpoint(ep webcraft.Endpoint) endpointInfo {
	return endpointInfo{
		Operation: string(ep.Operation),
		Command:   ep.Group + " " + commandName(ep.Operation),
		Method:    ep.Method,
		Path:      ep.Path,
		Params:    ep.Params(),
		Body:      requestFields(ep.Request),
		Response:  ep.Response.Name(),
	}
}

// requestFields lists the JSON fields of a request record. Required fields are marked with "*".
func requestFields(t reflect.Type) []string {
	if t == nil {
		return nil
	}
	fields := []string{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		required := strings.Contains(f.Tag.Get("validate"), "required")
		if required {
			name += "*"
		} else if strings.Contains(opts, "omitempty") {
			name += "?"
		}
		fields = append(fields, name)
	}
	return fields
}

func (e *endpointsRunner) RunE(cmd *cobra.Command, args []string) error {
	groups := map[string][]endpointInfo{}
	for _, ep := range webcraft.Endpoints() {
		if len(args) == 1 && ep.Group != args[0] {
			continue
		}
		groups[ep.Group] = append(groups[ep.Group], describeEndpoint(ep))
	}
	if len(groups) == 0 {
		return fmt.Errorf("unknown group %q", args[0])
	}

	names := maps.Keys(groups)
	slices.Sort(names)
	all := []endpointInfo{}
	for _, name := range names {
		all = append(all, groups[name]...)
	}

	return render(cmd, all, func(l *cmdlog.Logger) {
		for _, name := range names {
			l.Headline(name)
			for _, ep := range groups[name] {
				line := fmt.Sprintf("%-28s %-6s %s", commandName(webcraft.Operation(ep.Operation)), ep.Method, ep.Path)
				if len(ep.Body) != 0 {
					line += gchalk.Dim(" {" + strings.Join(ep.Body, ", ") + "}")
				}
				l.Indented().Info(line)
			}
		}
	})
}

// resolveOperation finds an operation by its name. Accepted forms are "players.GetPlayerInfo",
// "players.get-player-info" and "players get-player-info" (as two arguments).
func resolveOperation(args []string) (webcraft.Endpoint, []string, error) {
	if len(args) == 0 {
		return webcraft.Endpoint{}, nil, fmt.Errorf("operation missing")
	}

	name, rest := args[0], args[1:]
	group, method, ok := strings.Cut(name, ".")
	if !ok && len(rest) > 0 {
		group, method = name, rest[0]
		rest = rest[1:]
	}

	wanted := normalizeName(method)
	for _, ep := range webcraft.Endpoints() {
		if ep.Group != strings.ToLower(group) {
			continue
		}
		if normalizeName(ep.Operation.Method()) == wanted {
			return ep, rest, nil
		}
	}

	return webcraft.Endpoint{}, nil, &commands.CliError{
		Text:        fmt.Sprintf("Unknown operation %q", strings.Join(args[:len(args)-len(rest)], " ")),
		Suggestions: []string{"Run `webcraft endpoints` to list all operations"},
	}
}

// commandName returns the kebab case method name of an operation ("get-banned-ips")
func commandName(op webcraft.Operation) string {
	return strcase.KebabCase(strings.ReplaceAll(op.Method(), "IPs", "Ips"))
}

func normalizeName(name string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
}
