package api

import (
	"html/template"

	"weatherwidget.app/internal/core/widget"
)

const pageName = "widget.html"

// Themes offered by the theme toggle
var Themes = []string{"day", "night"}

type pageData struct {
	View   widget.View
	Themes []string
}

var pageTemplate = template.Must(template.New(pageName).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Weather</title>
  {{- if .View.Busy}}
  <meta http-equiv="refresh" content="1">
  {{- end}}
</head>
<body class="theme-{{.View.Theme}}" data-status="{{.View.Status}}">
  <main class="widget">
    <form class="search" method="post" action="/search">
      <input type="text" name="city" placeholder="Enter city name" value="{{.View.InputValue}}" autocomplete="off">
      <button type="submit"{{if .View.SubmitDisabled}} disabled{{end}}>Search</button>
    </form>

    <form class="themes" method="post" action="/theme">
      {{- range .Themes}}
      <button type="submit" name="theme" value="{{.}}"{{if eq . $.View.Theme}} class="active"{{end}}>{{.}}</button>
      {{- end}}
    </form>

    {{- if .View.Busy}}
    <div class="loading">Loading...</div>
    {{- end}}

    {{- if .View.ErrorVisible}}
    <div class="error" role="alert">{{.View.ErrorMessage}}</div>
    {{- end}}

    {{- if and .View.ResultVisible .View.Result}}
    {{- with .View.Result}}
    <section class="result">
      <h2>{{.Location}}</h2>
      <img src="{{.IconURL}}" alt="{{.Description}}">
      <p class="description">{{.Description}}</p>
      <p class="temperature">{{.Temperature}}</p>
      <p class="feels-like">{{.FeelsLike}}</p>
      <dl>
        <dt>Humidity</dt><dd>{{.Humidity}}</dd>
        <dt>Wind</dt><dd>{{.WindSpeed}}</dd>
        <dt>Pressure</dt><dd>{{.Pressure}}</dd>
        <dt>Visibility</dt><dd>{{.Visibility}}</dd>
        <dt>Clouds</dt><dd>{{.Cloudiness}}</dd>
      </dl>
    </section>
    {{- end}}
    {{- end}}

    {{- if .View.ForecastVisible}}
    <section class="forecast">
      {{- range .View.Forecast}}
      <div class="forecast-card">
        <span class="date">{{.Date}}</span>
        <img src="{{.IconURL}}" alt="{{.Description}}">
        <span class="description">{{.Description}}</span>
        <span class="high">{{.High}}</span>
        <span class="low">{{.Low}}</span>
      </div>
      {{- end}}
    </section>
    {{- end}}
  </main>
</body>
</html>
`))
