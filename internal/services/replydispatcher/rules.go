package replydispatcher

import (
	"errors"
	"fmt"
	"os"

	"github.com/DIMO-Network/line-reply-bot/internal/celcondition"
	"github.com/google/cel-go/cel"
	"gopkg.in/yaml.v3"
)

// ErrInvalidRule is returned when a reply rule cannot be compiled.
var ErrInvalidRule = errors.New("invalid reply rule")

const (
	// FallbackReply is sent when no rule matches the inbound text.
	FallbackReply = "ご質問は下のメニューからお選びください。"

	// WelcomeTemplate is sent to new followers; %s is the display name.
	WelcomeTemplate = `こんにちは、%sさん！
友だち追加ありがとうございます。

このBotでは以下のサービスをご利用いただけます：
・予約の確認
・営業時間の確認
・お問い合わせ

下のメニューからお選びください。`
)

// DefaultRules is the built-in reply table.
var DefaultRules = []Rule{
	{Trigger: "予約", Reply: "予約はこちらから！\nhttps://your-booking-site.com"},
	{Trigger: "営業時間", Reply: "営業時間：10:00-20:00\n定休日：毎週水曜日"},
}

// Rule maps inbound text to a reply. Exactly one of Trigger or Condition is set:
// Trigger matches by exact, case-sensitive equality and Condition is a CEL
// expression over `text`.
type Rule struct {
	Trigger   string `yaml:"trigger"`
	Condition string `yaml:"condition"`
	Reply     string `yaml:"reply"`
}

// RulesFile is the YAML document accepted by LoadTable.
type RulesFile struct {
	Rules    []Rule `yaml:"rules"`
	Fallback string `yaml:"fallback"`
}

type compiledRule struct {
	Rule
	program cel.Program
}

func (r compiledRule) matches(text string) (bool, error) {
	if r.program == nil {
		return text == r.Trigger, nil
	}
	return celcondition.EvaluateCondition(r.program, text)
}

// Table is an ordered reply table. It is immutable once built and safe for
// concurrent use.
type Table struct {
	rules    []compiledRule
	fallback string
}

// NewTable compiles rules in order. An empty fallback uses FallbackReply.
func NewTable(rules []Rule, fallback string) (*Table, error) {
	if fallback == "" {
		fallback = FallbackReply
	}
	compiled := make([]compiledRule, 0, len(rules))
	for i, r := range rules {
		c, err := compileRule(r)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		compiled = append(compiled, c)
	}
	return &Table{rules: compiled, fallback: fallback}, nil
}

// DefaultTable returns the built-in reply table.
func DefaultTable() *Table {
	table, err := NewTable(DefaultRules, FallbackReply)
	if err != nil {
		panic(err)
	}
	return table
}

// LoadTable reads a rules file. An empty path returns the default table.
func LoadTable(path string) (*Table, error) {
	if path == "" {
		return DefaultTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reply rules file: %w", err)
	}
	var file RulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidRule, path, err)
	}
	return NewTable(file.Rules, file.Fallback)
}

func compileRule(r Rule) (compiledRule, error) {
	if r.Reply == "" {
		return compiledRule{}, fmt.Errorf("%w: empty reply", ErrInvalidRule)
	}
	switch {
	case r.Trigger != "" && r.Condition != "":
		return compiledRule{}, fmt.Errorf("%w: trigger and condition are mutually exclusive", ErrInvalidRule)
	case r.Trigger == "" && r.Condition == "":
		return compiledRule{}, fmt.Errorf("%w: trigger or condition is required", ErrInvalidRule)
	case r.Condition != "":
		prg, err := celcondition.PrepareCondition(r.Condition)
		if err != nil {
			return compiledRule{}, fmt.Errorf("%w: condition %q: %w", ErrInvalidRule, r.Condition, err)
		}
		return compiledRule{Rule: r, program: prg}, nil
	default:
		return compiledRule{Rule: r}, nil
	}
}

// Match returns the reply for text: the first matching rule wins, otherwise
// the fallback. A condition that fails to evaluate counts as no match.
func (t *Table) Match(text string) string {
	for _, r := range t.rules {
		ok, err := r.matches(text)
		if err == nil && ok {
			return r.Reply
		}
	}
	return t.fallback
}

// Fallback returns the reply used when nothing matches.
func (t *Table) Fallback() string {
	return t.fallback
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.rules)
}
