package http

import "github.com/yanqian/daily-horoscope/internal/domain/horoscope"

type signDisplay struct {
	Label string
	Color string
}

var displays = map[string]signDisplay{
	"koc":     {Label: "♈ Koç", Color: "#FF6B6B"},
	"boga":    {Label: "♉ Boğa", Color: "#6BCB77"},
	"ikizler": {Label: "♊ İkizler", Color: "#4D96FF"},
	"yengec":  {Label: "♋ Yengeç", Color: "#FFD93D"},
	"aslan":   {Label: "♌ Aslan", Color: "#FF914D"},
	"basak":   {Label: "♍ Başak", Color: "#9D84B7"},
	"terazi":  {Label: "♎ Terazi", Color: "#FFB4B4"},
	"akrep":   {Label: "♏ Akrep", Color: "#8E44AD"},
	"yay":     {Label: "♐ Yay", Color: "#F39C12"},
	"oglak":   {Label: "♑ Oğlak", Color: "#95A5A6"},
	"kova":    {Label: "♒ Kova", Color: "#00CEC9"},
	"balik":   {Label: "♓ Balık", Color: "#74B9FF"},
}

func displayFor(key string) signDisplay {
	if d, ok := displays[key]; ok {
		return d
	}
	return signDisplay{Label: key}
}

// horoscopeView is the JSON shape consumed by the web client.
type horoscopeView struct {
	Sign   string `json:"sign"`
	Key    string `json:"key"`
	Date   string `json:"date"`
	Text   string `json:"text"`
	Love   int    `json:"love"`
	Money  int    `json:"money"`
	Health int    `json:"health"`
	Color  string `json:"color,omitempty"`
}

type allView struct {
	Date       string          `json:"date"`
	Horoscopes []horoscopeView `json:"horoscopes"`
}

type signView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

func toView(rec horoscope.Record) horoscopeView {
	d := displayFor(rec.Sign)
	return horoscopeView{
		Sign:   d.Label,
		Key:    rec.Sign,
		Date:   rec.Date,
		Text:   rec.Text,
		Love:   rec.Love,
		Money:  rec.Money,
		Health: rec.Health,
		Color:  d.Color,
	}
}

func toAllView(resp horoscope.AllResponse) allView {
	views := make([]horoscopeView, 0, len(resp.Horoscopes))
	for _, rec := range resp.Horoscopes {
		views = append(views, toView(rec))
	}
	return allView{Date: resp.Date, Horoscopes: views}
}

func toSignViews(keys []string) []signView {
	out := make([]signView, 0, len(keys))
	for _, key := range keys {
		d := displayFor(key)
		out = append(out, signView{Key: key, Label: d.Label, Color: d.Color})
	}
	return out
}
