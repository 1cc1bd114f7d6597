package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appmodel/apphost/internal/appfile"
	"github.com/appmodel/apphost/internal/config"
	"github.com/appmodel/apphost/internal/eval"
	"github.com/appmodel/apphost/internal/model"
	"github.com/appmodel/apphost/internal/output"
)

// resourcePlan is the resolved launch state of one resource.
type resourcePlan struct {
	resource         *model.Resource
	endpoints        []endpointPlan
	env              []eval.EnvVar
	connectionString string
	hasConnection    bool
}

type endpointPlan struct {
	name string
	url  string
}

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	var hostFlag string

	cmd := &cobra.Command{
		Use:   "run [path]",
		Short: "Resolve the launch plan with live endpoint allocation",
		Long: `Resolve the application model in run mode.

Endpoints are allocated on the configured host, and each resource's
environment variables and connection string are resolved to concrete values.
The resulting launch plan is printed for an external launcher; apphost does
not start containers itself.

Arguments:
  path    Path to the app file or its directory (default: current directory)

Examples:
  # Resolve the app in the current directory
  apphost run

  # Allocate endpoints on a specific host
  apphost run ./my-app --host 127.0.0.1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd.Context(), args, hostFlag)
		},
	}

	cmd.Flags().StringVar(&hostFlag, "host", "",
		"Host to allocate endpoints on (env: APPHOST_RUN_HOST)")
	return cmd
}

// runRun executes the run command.
func runRun(ctx context.Context, args []string, host string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	graph, err := appfile.Load(path)
	if err != nil {
		return err
	}

	resolved := config.ResolveAll(config.ResolveOptions{
		RunHostFlag: host,
		Config:      GetConfig(),
	})

	allocateEndpoints(graph, resolved.RunHost.Value)

	ec := eval.NewExecutionContext(graph, eval.ModeRun)

	var plans []resourcePlan
	err = output.RunWithSpinner(ctx, func() error {
		var evalErr error
		plans, evalErr = resolvePlans(ctx, ec, graph)
		return evalErr
	}, output.WithTitle("Resolving application model..."))
	if err != nil {
		return err
	}

	printPlans(plans)
	return nil
}

// allocateEndpoints binds every declared endpoint to the run host at its
// target port.
func allocateEndpoints(graph *model.Graph, host string) {
	for _, res := range graph.Resources() {
		for _, ep := range res.Endpoints() {
			ep.Allocate(host, ep.TargetPort)
		}
	}
}

// resolvePlans evaluates every non-parameter resource in declaration order.
func resolvePlans(ctx context.Context, ec *eval.ExecutionContext, graph *model.Graph) ([]resourcePlan, error) {
	var plans []resourcePlan
	for _, res := range graph.Resources() {
		if res.Kind() == model.KindParameter {
			continue
		}

		plan := resourcePlan{resource: res}
		for _, ep := range res.Endpoints() {
			url, err := ec.EndpointURL(res, ep)
			if err != nil {
				return nil, err
			}
			plan.endpoints = append(plan.endpoints, endpointPlan{name: ep.Name, url: url})
		}

		env, err := ec.Environment(ctx, res)
		if err != nil {
			return nil, err
		}
		plan.env = env

		if _, ok := res.ConnectionString(); ok {
			cs, err := ec.ConnectionString(res)
			if err != nil {
				return nil, err
			}
			plan.connectionString = cs
			plan.hasConnection = true
		}

		plans = append(plans, plan)
	}
	return plans, nil
}

// printPlans renders the launch plan to stdout.
func printPlans(plans []resourcePlan) {
	for i, plan := range plans {
		if i > 0 {
			output.Println("")
		}
		output.Println(output.FormatResourceHeader(plan.resource.Name(), string(plan.resource.Kind())))

		if cmd, ok := plan.resource.Command(); ok {
			line := cmd.Command
			for _, arg := range cmd.Args {
				line += " " + arg
			}
			output.Println(output.FormatPlanLine("command", line))
		}
		if img, ok := plan.resource.Image(); ok {
			output.Println(output.FormatPlanLine("image", img.Ref()))
		}
		for _, ep := range plan.endpoints {
			output.Println(output.FormatPlanLine("endpoint "+ep.name, ep.url))
		}
		for _, v := range plan.env {
			output.Println(output.FormatPlanLine(v.Name, v.Value))
		}
		if plan.hasConnection {
			output.Println(output.FormatPlanLine("connectionString", plan.connectionString))
		}
	}

	output.Println("")
	output.Println(output.StyleSummary.Render(
		fmt.Sprintf("resolved %s", output.FormatCount(len(plans), "resource"))))
}
