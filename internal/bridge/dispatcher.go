// Package bridge answers the desktop shell's named operations with a uniform
// {success, data, error} result. Nothing raised below this layer crosses it.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"gym_club_backend/internal/models"
	"gym_club_backend/internal/services"
	"gym_club_backend/pkg/utils"
)

var ErrUnknownOperation = errors.New("unknown operation")

// Operation is one entry of the catalog. Action names the attempted action in
// failure messages ("failed to save member").
type Operation struct {
	Action string
	Run    func(ctx context.Context, payload json.RawMessage) (interface{}, error)
}

// Services is everything the catalog dispatches to.
type Services struct {
	Members   services.MemberService
	Visitors  services.VisitorService
	PTClients services.PTClientService
	Ancillary services.AncillaryService
	Dashboard services.DashboardService
	Export    services.ExportService
	Settings  services.SettingsService
	Backup    services.BackupService
	Lookup    services.LookupService
	Clock     services.Clock
}

type Dispatcher struct {
	catalog  map[string]Operation
	validate *validator.Validate
}

// NewDispatcher builds the fixed operation catalog over svc.
func NewDispatcher(svc Services) *Dispatcher {
	if svc.Clock == nil {
		svc.Clock = time.Now
	}
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	d := &Dispatcher{validate: v}
	d.catalog = catalog(d, svc)
	return d
}

// Operations lists the catalog names in sorted order.
func (d *Dispatcher) Operations() []string {
	names := make([]string, 0, len(d.catalog))
	for name := range d.catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the named operation. Every failure, including a panic inside the
// operation, is reported as an unsuccessful Result.
func (d *Dispatcher) Invoke(ctx context.Context, name string, payload json.RawMessage) (res models.Result) {
	op, ok := d.catalog[name]
	if !ok {
		utils.LogWarn("Unknown bridge operation", map[string]interface{}{"operation": name})
		return models.Fail(fmt.Sprintf("%s: %q", ErrUnknownOperation, name))
	}

	defer func() {
		if r := recover(); r != nil {
			utils.LogError(fmt.Errorf("panic: %v", r), "Bridge operation panicked: "+name)
			res = models.Fail(fmt.Sprintf("%s: unexpected error", op.Action))
		}
	}()

	data, err := op.Run(ctx, payload)
	if err != nil {
		utils.LogError(err, "Bridge operation failed: "+name)
		return models.Fail(fmt.Sprintf("%s: %s", op.Action, err))
	}
	return models.OK(data)
}

// decode reads payload into dst and checks its binding tags. An empty payload
// decodes as an empty object.
func (d *Dispatcher) decode(payload json.RawMessage, dst interface{}) error {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		trimmed = []byte("{}")
	}
	if err := json.Unmarshal(trimmed, dst); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	if err := d.validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid payload: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s check", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
