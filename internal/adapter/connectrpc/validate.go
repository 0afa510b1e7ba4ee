package connectrpc

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"connectrpc.com/connect"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
)

// Validator checks request messages against their validate tags before they reach a
// handler. Field names in errors are the JSON names.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func NewValidator() (*Validator, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	locale := en.New()
	translator, _ := ut.New(locale, locale).GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(v, translator); err != nil {
		return nil, err
	}
	return &Validator{validate: v, translator: translator}, nil
}

// Check returns a CodeInvalidArgument error with a BadRequest detail listing every
// violated field.
func (v *Validator) Check(msg any) error {
	err := v.validate.Struct(msg)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}

	violations := make([]*errdetails.BadRequest_FieldViolation, 0, len(fieldErrs))
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		desc := fe.Translate(v.translator)
		violations = append(violations, &errdetails.BadRequest_FieldViolation{
			Field:       fieldPath(fe.Namespace()),
			Description: desc,
		})
		messages = append(messages, desc)
	}

	cerr := connect.NewError(connect.CodeInvalidArgument, errors.New(strings.Join(messages, "; ")))
	if detail, derr := connect.NewErrorDetail(&errdetails.BadRequest{FieldViolations: violations}); derr == nil {
		cerr.AddDetail(detail)
	}
	return cerr
}

// UnaryInterceptor validates inbound requests on the handler side.
func (v *Validator) UnaryInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if !req.Spec().IsClient {
				if err := v.Check(req.Any()); err != nil {
					return nil, err
				}
			}
			return next(ctx, req)
		}
	}
}

// fieldPath drops the root struct name: "GradeRequest.answers[0].question_id"
// becomes "answers[0].question_id".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
