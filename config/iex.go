package config

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// IEXConfig defines the configuration for the IEX Cloud stock data API.
type IEXConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	Token          string        `mapstructure:"token"`
	TokenParameter string        `mapstructure:"token_parameter"` // SSM parameter holding the token in prod
	Timeout        time.Duration `mapstructure:"timeout"`
}

// ParameterStore is the subset of the SSM client used to read secrets.
type ParameterStore interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// NewParameterStore builds an SSM client from the default AWS credential chain.
func NewParameterStore(ctx context.Context) (*ssm.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

// ResolveToken returns the IEX API token. In prod the token is read from the
// SSM parameter store; everywhere else the configured value is used as is.
func (cfg *IEXConfig) ResolveToken(ctx context.Context, env string, store ParameterStore) (string, error) {
	if env != "prod" {
		return cfg.Token, nil
	}
	if store == nil {
		return "", fmt.Errorf("resolve iex token: no parameter store")
	}
	return getParameterStoreValue(ctx, store, cfg.TokenParameter, true)
}

func getParameterStoreValue(ctx context.Context, store ParameterStore, parameterName string, decrypt bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	input := &ssm.GetParameterInput{
		Name:           &parameterName,
		WithDecryption: &decrypt,
	}

	result, err := store.GetParameter(ctx, input)
	if err != nil {
		return "", fmt.Errorf("get parameter %s: %w", parameterName, err)
	}

	if result.Parameter == nil || result.Parameter.Value == nil {
		return "", fmt.Errorf("parameter %s has no value", parameterName)
	}

	return *result.Parameter.Value, nil
}
