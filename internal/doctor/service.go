package doctor

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Search(name, specialty string) ([]*Doctor, error) {
	return s.repo.Search(name, specialty)
}

func (s *Service) GetByID(id string) (*Doctor, error) {
	return s.repo.FindByID(id)
}

func (s *Service) BySpecialty(specialty string) ([]*Doctor, error) {
	return s.repo.FindBySpecialty(specialty)
}
