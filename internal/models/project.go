package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

type Framework string

const (
	Selenium   Framework = "Selenium"
	Playwright Framework = "Playwright"
	Puppeteer  Framework = "Puppeteer"
)

var Frameworks = []Framework{Selenium, Playwright, Puppeteer}

func ParseFramework(s string) (Framework, error) {
	f := Framework(strings.TrimSpace(s))
	if !lo.Contains(Frameworks, f) {
		return "", fmt.Errorf("unknown automation framework %q", s)
	}
	return f, nil
}

type Provider string

const (
	AWS   Provider = "AWS"
	Azure Provider = "Azure"
)

var Providers = []Provider{AWS, Azure}

func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.TrimSpace(s))
	if !lo.Contains(Providers, p) {
		return "", fmt.Errorf("unknown cloud provider %q", s)
	}
	return p, nil
}

// Regions is the closed set offered when the deploy target region is missing.
var Regions = []string{"us-east-1", "us-west-2"}

var accountPattern = regexp.MustCompile(`^[0-9]{12}$`)

// ValidateAccountID accepts a 12-digit AWS account number.
func ValidateAccountID(s string) error {
	if !accountPattern.MatchString(strings.TrimSpace(s)) {
		return fmt.Errorf("account id must be 12 digits")
	}
	return nil
}

func IsRegion(s string) bool {
	return lo.Contains(Regions, s)
}

type AWSCredentials struct {
	AccountID string `yaml:"account_id,omitempty"`
	Region    string `yaml:"region,omitempty"`
}

// Complete reports whether deploy can run without asking anything.
func (c *AWSCredentials) Complete() bool {
	return c != nil && c.AccountID != "" && c.Region != ""
}

// Environment returns the CDK environment identifier aws://account/region.
func (c AWSCredentials) Environment() string {
	return fmt.Sprintf("aws://%s/%s", c.AccountID, c.Region)
}

type ProjectConfig struct {
	Name      string          `yaml:"project_name"`
	Framework Framework       `yaml:"automation_framework"`
	Provider  Provider        `yaml:"cloud_provider"`
	AWS       *AWSCredentials `yaml:"aws,omitempty"`
	Stage     Stage           `yaml:"stage"`

	// ProjectDir is set once scaffolding succeeded; it is never written to disk.
	ProjectDir string `yaml:"-"`
}

// ValidateName accepts names that map to a single directory entry.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return errors.New("project name cannot be empty")
	case name == "." || name == "..":
		return fmt.Errorf("project name cannot be %q", name)
	case strings.ContainsAny(name, `/\`):
		return errors.New("project name cannot contain path separators")
	}
	return nil
}

// NewProjectConfig validates raw prompt answers into a Configured project.
func NewProjectConfig(name, framework, provider string) (*ProjectConfig, error) {
	name = strings.TrimSpace(name)
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	f, err := ParseFramework(framework)
	if err != nil {
		return nil, err
	}
	p, err := ParseProvider(provider)
	if err != nil {
		return nil, err
	}
	return &ProjectConfig{
		Name:      name,
		Framework: f,
		Provider:  p,
		Stage:     Configured,
	}, nil
}

func (c *ProjectConfig) Scaffolded() bool {
	return c != nil && c.ProjectDir != ""
}

// Credentials returns the AWS credentials block, creating it on first use.
func (c *ProjectConfig) Credentials() *AWSCredentials {
	if c.AWS == nil {
		c.AWS = &AWSCredentials{}
	}
	return c.AWS
}

// Advance moves the project to next, rejecting transitions the workflow does not allow.
func (c *ProjectConfig) Advance(next Stage) error {
	if !c.Stage.CanAdvance(next) {
		return fmt.Errorf("cannot move project from %s to %s", c.Stage, next)
	}
	c.Stage = next
	return nil
}
