package seed

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/amirasaad/bankseed/pkg/domain/account"
	"github.com/amirasaad/bankseed/pkg/seed"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed datasets/*.yaml
var datasets embed.FS

// DefaultDataset is used when no dataset is named.
const DefaultDataset = "playground"

var validate = validator.New(validator.WithRequiredStructEnabled())

type datasetFile struct {
	Name         string           `yaml:"name" validate:"required"`
	Settings     []settingRow     `yaml:"settings" validate:"unique=Key,dive"`
	Users        []userRow        `yaml:"users" validate:"unique=Login,dive"`
	Branches     []string         `yaml:"branches" validate:"unique,dive,required,max=10"`
	Accounts     accountRow       `yaml:"accounts"`
	Balances     []string         `yaml:"balances" validate:"dive,numeric"`
	Transactions []transactionRow `yaml:"transactions" validate:"dive"`
}

type settingRow struct {
	Key   string `yaml:"key" validate:"required,max=100"`
	Value string `yaml:"value" validate:"max=255"`
}

type userRow struct {
	Login     string `yaml:"login" validate:"required,max=50"`
	Password  string `yaml:"password" validate:"required"`
	FirstName string `yaml:"first_name" validate:"required,max=100"`
	LastName  string `yaml:"last_name" validate:"max=100"`
	Email     string `yaml:"email" validate:"omitempty,email"`
	Phone     string `yaml:"phone" validate:"max=30"`
}

type accountRow struct {
	NumberSuffix    string `yaml:"number_suffix" validate:"omitempty,alphanum,max=10"`
	StartingBalance string `yaml:"starting_balance" validate:"omitempty,numeric"`
}

type transactionRow struct {
	Amount string `yaml:"amount" validate:"required,numeric"`
	Type   string `yaml:"type" validate:"required,oneof=Deposit Withdraw Payment"`
}

// Names lists the embedded datasets.
func Names() []string {
	entries, err := datasets.ReadDir("datasets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Load returns the embedded dataset called nameOrPath, or parses the YAML file
// at that path when no embedded dataset has that name. Empty selects
// DefaultDataset.
func Load(nameOrPath string) (*seed.Dataset, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultDataset
	}

	raw, err := datasets.ReadFile("datasets/" + nameOrPath + ".yaml")
	if err == nil {
		return Parse(bytes.NewReader(raw))
	}

	f, err := os.Open(nameOrPath)
	if err != nil {
		return nil, fmt.Errorf("dataset %q is neither embedded (%s) nor a readable file: %w",
			nameOrPath, strings.Join(Names(), ", "), err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Parse(f)
}

// Parse decodes and validates a YAML dataset.
func Parse(r io.Reader) (*seed.Dataset, error) {
	var file datasetFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty dataset")
		}
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("invalid dataset %q: %w", file.Name, err)
	}
	return file.toDataset()
}

func (f datasetFile) toDataset() (*seed.Dataset, error) {
	ds := &seed.Dataset{
		Name:     f.Name,
		Branches: f.Branches,
		Accounts: seed.AccountPlan{NumberSuffix: f.Accounts.NumberSuffix},
	}
	for _, s := range f.Settings {
		ds.Settings = append(ds.Settings, seed.SettingSeed{Key: s.Key, Value: s.Value})
	}
	for _, u := range f.Users {
		ds.Users = append(ds.Users, seed.UserSeed{
			Login:        u.Login,
			Password:     u.Password,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			EmailAddress: u.Email,
			PhoneNumber:  u.Phone,
		})
	}
	if f.Accounts.StartingBalance != "" {
		balance, err := decimal.NewFromString(f.Accounts.StartingBalance)
		if err != nil {
			return nil, fmt.Errorf("starting balance: %w", err)
		}
		ds.Accounts.StartingBalance = &balance
	}
	for i, b := range f.Balances {
		amount, err := decimal.NewFromString(b)
		if err != nil {
			return nil, fmt.Errorf("balance %d: %w", i, err)
		}
		ds.Balances = append(ds.Balances, amount)
	}
	for i, t := range f.Transactions {
		amount, err := decimal.NewFromString(t.Amount)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		typ, err := account.ParseTransactionType(t.Type)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		ds.Transactions = append(ds.Transactions, seed.TransactionSeed{Amount: amount, Type: typ})
	}
	return ds, nil
}
