package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/gestion-empleados/api-trabajadores/internal/config"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func initSecretsConfig(ctx context.Context) (*secretsmanager.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar config AWS: %w", err)
	}
	return secretsmanager.NewFromConfig(awsCfg), nil
}

// retrieveCredentials usa DB_USERNAME/DB_PASSWORD y, si faltan, el secreto DB_SECRET_ID.
func retrieveCredentials(cfg config.Config) (string, string, error) {
	if cfg.DBUsername != "" && cfg.DBPassword != "" {
		return cfg.DBUsername, cfg.DBPassword, nil
	}
	if cfg.DBSecretID == "" {
		return "", "", errors.New("faltan DB_USERNAME/DB_PASSWORD y DB_SECRET_ID")
	}

	ctx := context.Background()
	secrets, err := initSecretsConfig(ctx)
	if err != nil {
		return "", "", err
	}
	result, err := secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(cfg.DBSecretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return "", "", fmt.Errorf("leer secreto %s: %w", cfg.DBSecretID, err)
	}
	return parseCredentials(aws.ToString(result.SecretString))
}

func parseCredentials(secretString string) (string, string, error) {
	var secret Credentials
	if err := json.Unmarshal([]byte(secretString), &secret); err != nil {
		return "", "", fmt.Errorf("secreto con formato inválido: %w", err)
	}
	if secret.Username == "" || secret.Password == "" {
		return "", "", errors.New("secreto sin username/password")
	}
	return secret.Username, secret.Password, nil
}
