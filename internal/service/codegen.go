package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/benx421/payment-gateway/pos/internal/config"
	"github.com/benx421/payment-gateway/pos/internal/repository"
	"github.com/bwmarrin/snowflake"
)

const (
	codePrefix        = "TRX"
	randomCodeDigits  = 7
	maxRandomAttempts = 5
)

var randomCodeSpace = big.NewInt(10_000_000)

// CodeGenerator produces transaction codes for new submissions
type CodeGenerator interface {
	NextCode(ctx context.Context) (string, error)
}

// RandomCodeGenerator draws TRX + 7 random digits and retries on collision
type RandomCodeGenerator struct {
	transactions repository.TransactionRepository
}

// NewRandomCodeGenerator creates a RandomCodeGenerator checking codes against the store
func NewRandomCodeGenerator(transactions repository.TransactionRepository) *RandomCodeGenerator {
	return &RandomCodeGenerator{transactions: transactions}
}

// NextCode draws random codes until one is not yet in the store
func (g *RandomCodeGenerator) NextCode(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= maxRandomAttempts; attempt++ {
		n, err := rand.Int(rand.Reader, randomCodeSpace)
		if err != nil {
			return "", fmt.Errorf("failed to read random digits: %w", err)
		}

		code := fmt.Sprintf("%s%0*d", codePrefix, randomCodeDigits, n.Int64())
		exists, err := g.transactions.ExistsByCode(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}

	return "", fmt.Errorf("no free transaction code after %d attempts", maxRandomAttempts)
}

// SnowflakeCodeGenerator derives codes from time ordered snowflake ids
type SnowflakeCodeGenerator struct {
	node *snowflake.Node
}

// NewSnowflakeCodeGenerator creates a generator for the given node number (0-1023)
func NewSnowflakeCodeGenerator(node int64) (*SnowflakeCodeGenerator, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}
	return &SnowflakeCodeGenerator{node: n}, nil
}

// NextCode returns the prefixed next snowflake id
func (g *SnowflakeCodeGenerator) NextCode(_ context.Context) (string, error) {
	return codePrefix + g.node.Generate().String(), nil
}

// NewCodeGenerator selects the generator named by cfg.CodeStrategy
func NewCodeGenerator(cfg *config.AppConfig, transactions repository.TransactionRepository) (CodeGenerator, error) {
	switch cfg.CodeStrategy {
	case config.CodeStrategySnowflake:
		return NewSnowflakeCodeGenerator(cfg.SnowflakeNode)
	case config.CodeStrategyRandom, "":
		return NewRandomCodeGenerator(transactions), nil
	default:
		return nil, fmt.Errorf("unknown transaction code strategy %q", cfg.CodeStrategy)
	}
}
