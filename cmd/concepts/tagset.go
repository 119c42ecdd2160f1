package main

import (
	"github.com/marcodamonte/go-concepts/tagset"
)

func demoTagset() error {
	http, err := tagset.Declare("HttpStatusCode",
		tagset.Unit("SwitchProtocol"),
		tagset.Tagged("NotFound", 404),
		tagset.Unit("GatewayTimeout"),
	)
	if err != nil {
		return err
	}
	label("declared", http)
	for _, v := range http.Variants() {
		u8, err := tagset.Cast[uint8](http, v.Name)
		if err != nil {
			return err
		}
		label(v.Name+" as uint8", u8)
	}

	lang, err := tagset.Declare("ProgramLanguage",
		tagset.Tagged("Rust", 1),
		tagset.Tagged("Java", 2),
		tagset.WithPayload("Rest"),
	)
	if err != nil {
		return err
	}
	label("declared", lang)
	label("fieldless", lang.Fieldless())
	if _, err := tagset.Cast[uint8](lang, "Rest"); err != nil {
		label("Rest as uint8", err)
	}
	return nil
}

func demoTagsetErrors() error {
	bad := []struct {
		name     string
		variants []tagset.Variant
	}{
		{"Clash", []tagset.Variant{tagset.Tagged("A", 1), tagset.Tagged("B", 0), tagset.Unit("C")}},
		{"Twice", []tagset.Variant{tagset.Unit("A"), tagset.Unit("A")}},
		{"Tagged payload", []tagset.Variant{{Name: "Rest", Tag: new(int64), Payload: true}}},
	}
	for _, b := range bad {
		if _, err := tagset.Declare(b.name, b.variants...); err != nil {
			label(b.name, err)
		}
	}
	return nil
}
