package handler

import (
	"github.com/google/uuid"

	"github.com/dtroode/myflix-server/internal/model"
	"github.com/dtroode/myflix-server/internal/validator"
)

type registerRequest struct {
	Username string `json:"Username" validate:"required,alphanum,min=3,max=30"`
	Password string `json:"Password" validate:"required,alphanum,min=3,max=30"`
	Email    string `json:"Email" validate:"required,email,domain_email"`
	Birthday string `json:"Birthday" validate:"required,birthday"`
	City     string `json:"City" validate:"omitempty,alphanum,min=3,max=30"`
}

func (r registerRequest) params() (model.RegisterParams, error) {
	birthday, err := validator.ParseDate(r.Birthday)
	if err != nil {
		return model.RegisterParams{}, err
	}
	return model.RegisterParams{
		Username: r.Username,
		Password: r.Password,
		Email:    r.Email,
		Birthday: birthday,
		City:     r.City,
	}, nil
}

type loginRequest struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

type updateRequest struct {
	Username *string `json:"Username" validate:"omitempty,alphanum,min=3,max=30"`
	Password *string `json:"Password" validate:"omitempty,alphanum,min=3,max=30"`
	Email    *string `json:"Email" validate:"omitempty,email,domain_email"`
	Birthday *string `json:"Birthday" validate:"omitempty,birthday"`
	City     *string `json:"City" validate:"omitempty,alphanum,min=3,max=30"`
}

func (r updateRequest) params() (model.UpdateProfileParams, error) {
	params := model.UpdateProfileParams{
		Username: r.Username,
		Password: r.Password,
		Email:    r.Email,
		City:     r.City,
	}
	if r.Birthday != nil {
		birthday, err := validator.ParseDate(*r.Birthday)
		if err != nil {
			return model.UpdateProfileParams{}, err
		}
		params.Birthday = &birthday
	}
	return params, nil
}

type userResponse struct {
	ID             uuid.UUID   `json:"ID"`
	Username       string      `json:"Username"`
	Email          string      `json:"Email"`
	Birthday       string      `json:"Birthday"`
	City           string      `json:"City,omitempty"`
	FavoriteMovies []uuid.UUID `json:"FavoriteMovies"`
	ToWatch        []uuid.UUID `json:"ToWatch"`
}

func newUserResponse(u model.User) userResponse {
	resp := userResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		City:           u.City,
		FavoriteMovies: nonNil(u.FavoriteMovies),
		ToWatch:        nonNil(u.ToWatch),
	}
	if !u.Birthday.IsZero() {
		resp.Birthday = u.Birthday.Format(validator.DateLayout)
	}
	return resp
}

func nonNil(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}

type messageResponse struct {
	Message string `json:"Message"`
}

type userMessageResponse struct {
	Message string       `json:"Message"`
	User    userResponse `json:"User"`
}

type listResponse struct {
	Message string       `json:"Message"`
	Data    userResponse `json:"Data"`
}

type loginResponse struct {
	User  userResponse `json:"User"`
	Token string       `json:"Token"`
}

type genreResponse struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

type directorResponse struct {
	Name  string `json:"Name"`
	Bio   string `json:"Bio"`
	Birth string `json:"Birth,omitempty"`
	Death string `json:"Death,omitempty"`
}

type actorResponse struct {
	Name string `json:"Name"`
	Bio  string `json:"Bio,omitempty"`
}

type movieResponse struct {
	ID          uuid.UUID        `json:"ID"`
	Title       string           `json:"Title"`
	Description string           `json:"Description"`
	Genre       genreResponse    `json:"Genre"`
	Director    directorResponse `json:"Director"`
	Actors      []actorResponse  `json:"Actors"`
	ReleaseYear int              `json:"ReleaseYear,omitempty"`
	Rating      float64          `json:"Rating,omitempty"`
	ImagePath   string           `json:"ImagePath,omitempty"`
}

func newMovieResponse(m model.Movie) movieResponse {
	actors := make([]actorResponse, 0, len(m.Actors))
	for _, a := range m.Actors {
		actors = append(actors, actorResponse{Name: a.Name, Bio: a.Bio})
	}
	return movieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Genre:       genreResponse{Name: m.Genre.Name, Description: m.Genre.Description},
		Director:    newDirectorResponse(m.Director),
		Actors:      actors,
		ReleaseYear: m.ReleaseYear,
		Rating:      m.Rating,
		ImagePath:   m.ImagePath,
	}
}

func newDirectorResponse(d model.Director) directorResponse {
	return directorResponse{Name: d.Name, Bio: d.Bio, Birth: d.Birth, Death: d.Death}
}

type movieRefResponse struct {
	Title       string `json:"Title"`
	ReleaseYear int    `json:"ReleaseYear,omitempty"`
}

func newMovieRefs(refs []model.MovieRef) []movieRefResponse {
	out := make([]movieRefResponse, 0, len(refs))
	for _, r := range refs {
		out = append(out, movieRefResponse(r))
	}
	return out
}

type genreDetailsResponse struct {
	genreResponse
	Movies []movieRefResponse `json:"Movies"`
}

type directorDetailsResponse struct {
	directorResponse
	Movies []movieRefResponse `json:"Movies"`
}

type actorDetailsResponse struct {
	actorResponse
	Movies []movieRefResponse `json:"Movies"`
}
