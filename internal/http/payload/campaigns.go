package payload

import (
	"errors"
	"math/big"
	"net/url"
	"strconv"

	"crowdfunder/internal/core"
	"crowdfunder/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

const (
	VoteYes = "yes"
	VoteNo  = "no"
)

var errNotInteger = errors.New("must be an integer")

// CatalogRequest is read from the query string of the catalog route.
type CatalogRequest struct {
	Categorie string
	Name      string
	Limit     int
	Page      int
}

// ParseCatalogRequest reads the catalog query. Missing numbers are left at 0.
func ParseCatalogRequest(values url.Values) (CatalogRequest, error) {
	req := CatalogRequest{
		Categorie: values.Get("categorie"),
		Name:      values.Get("name"),
	}

	var err error
	if v := values.Get("limit"); v != "" {
		if req.Limit, err = strconv.Atoi(v); err != nil {
			return CatalogRequest{}, validation.Errors{"limit": errNotInteger}
		}
	}
	if v := values.Get("page"); v != "" {
		if req.Page, err = strconv.Atoi(v); err != nil {
			return CatalogRequest{}, validation.Errors{"page": errNotInteger}
		}
	}
	return req, nil
}

func (c CatalogRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Categorie, validation.Length(0, 100)),
		validation.Field(&c.Name, validation.Length(0, 100)),
		validation.Field(&c.Limit, validation.Min(0), validation.Max(core.MaxLimit)),
		validation.Field(&c.Page, validation.Min(0)),
	)
}

func (c CatalogRequest) ToQuery() core.CatalogQuery {
	return core.CatalogQuery{
		Categorie: c.Categorie,
		Name:      c.Name,
		Limit:     c.Limit,
		Page:      c.Page,
	}
}

type CreateCampaignRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Target      string `json:"target"`
	Categorie   string `json:"categorie"`
	TimeLimit   int64  `json:"timeLimit"`
	ImageCid    string `json:"imageCid"`
}

func (c CreateCampaignRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&c.Description, validation.Required, validation.Length(1, 5000)),
		validation.Field(&c.Target, validation.Required, isPositiveWei),
		validation.Field(&c.Categorie, validation.Required, isCategory),
		validation.Field(&c.TimeLimit, validation.Required, validation.Min(int64(1))),
		validation.Field(&c.ImageCid, validation.Required, validation.Match(cidRegex)),
	)
}

// ToCall converts a validated request.
func (c CreateCampaignRequest) ToCall() ethereum.CreateCampaignCall {
	target, _ := parseWei(c.Target)
	return ethereum.CreateCampaignCall{
		Name:        c.Name,
		Description: c.Description,
		Target:      target,
		Categorie:   c.Categorie,
		TimeLimit:   big.NewInt(c.TimeLimit),
		ImageCid:    c.ImageCid,
	}
}

type DonateRequest struct {
	Message string `json:"message"`
	Amount  string `json:"amount"`
}

func (d DonateRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Message, validation.Length(0, 500)),
		validation.Field(&d.Amount, validation.Required, isPositiveWei),
	)
}

// AmountWei returns the validated amount.
func (d DonateRequest) AmountWei() *big.Int {
	v, _ := parseWei(d.Amount)
	return v
}

type VotingRequest struct {
	Message string `json:"message"`
}

func (v VotingRequest) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Message, validation.Required, validation.Length(1, 500)),
	)
}

type VoteRequest struct {
	Choice string `json:"choice"`
}

func (v VoteRequest) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Choice, validation.Required, validation.In(VoteYes, VoteNo)),
	)
}

func (v VoteRequest) Yes() bool {
	return v.Choice == VoteYes
}

// ParseAddress validates a hex address taken from the request path.
func ParseAddress(s string) (common.Address, error) {
	if err := validation.Validate(s, validation.Required, isAddress); err != nil {
		return common.Address{}, err
	}
	return common.HexToAddress(s), nil
}

// DonationQRRequest is read from the query string of the donation qr route.
type DonationQRRequest struct {
	Message string
	Value   string
}

func ParseDonationQRRequest(values url.Values) DonationQRRequest {
	return DonationQRRequest{
		Message: values.Get("message"),
		Value:   values.Get("value"),
	}
}

func (d DonationQRRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Message, validation.Length(0, 500)),
		validation.Field(&d.Value, validation.When(d.Value != "", isPositiveWei)),
	)
}

// AmountWei returns the validated value, or nil when none was given.
func (d DonationQRRequest) AmountWei() *big.Int {
	v, _ := ParseOptionalWei(d.Value)
	return v
}

// ParseOptionalWei reads an optional amount of wei, such as a query value.
func ParseOptionalWei(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	return parseWei(s)
}
