package main

import (
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"
	"github.com/thatsmidnight/website/infra/config"
	"github.com/thatsmidnight/website/infra/lib/logging"
	"github.com/thatsmidnight/website/infra/stacks"
	"go.uber.org/zap"
)

func main() {
	os.Exit(synth())
}

// synth returns the process exit code so deferred cleanup runs before exit.
func synth() int {
	defer jsii.Close()

	logger, err := logging.New()
	if err != nil {
		os.Stderr.WriteString("building logger: " + err.Error() + "\n")
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(logger); err != nil {
		logger.Error("synthesis failed", zap.Error(err))
		return 1
	}
	return 0
}

func run(logger *zap.Logger) error {
	vars, err := config.LoadEnvironmentVariables[config.EnvironmentVariables]()
	if err != nil {
		return err
	}
	if !vars.HasCredentials() {
		// the toolkit may still resolve credentials from a profile
		logger.Warn("AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY not set")
	}

	app := awscdk.NewApp(nil)

	site, err := config.LoadSite(app, vars)
	if err != nil {
		return err
	}

	stackName := config.StackName(app)
	_, err = stacks.NewStaticSiteStack(app, stackName, &stacks.StaticSiteStackProps{
		StackProps: awscdk.StackProps{
			StackName:   jsii.String(stackName),
			Description: jsii.String("Static website for " + site.Domain),
		},
		Region: string(config.RegionUSEast1),
		Vars:   vars,
		Site:   site,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	app.Synth(nil)
	logger.Info("synthesized", zap.String("stack", stackName), zap.String("domain", site.Domain))
	return nil
}
