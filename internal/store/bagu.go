package store

import (
	"context"
	"log"
	"sync"

	"leotclient/internal/api"
	"leotclient/internal/models"
	"leotclient/internal/notify"
)

const msgLoginFirst = "Сначала войдите в систему"

// BaguStore - клиентский кэш домена банков вопросов. Все коллекции
// перезаписываются целиком последним успешным ответом; при неудаче
// остаётся последнее хорошее значение, вызывающему уходит предупреждение.
type BaguStore struct {
	mu sync.Mutex

	banks            []models.QuestionBank
	currentBank      *models.QuestionBank
	questions        []models.Question
	currentQuestion  *models.Question
	favourites       []models.Question
	bankQuestionList []models.Question
	comments         []models.QuestionComment
	loading          bool
	total            int64

	// нумерация переключений по записям: ответ применяется, только если
	// он самый свежий из выданных для этой записи
	thumbIssued   map[int64]uint64
	thumbApplied  map[int64]uint64
	favourIssued  map[int64]uint64
	favourApplied map[int64]uint64
	cthumbIssued  map[int64]uint64
	cthumbApplied map[int64]uint64

	session     *SessionStore
	questionAPI api.QuestionAPI
	bankAPI     api.QuestionBankAPI
	linkAPI     api.QuestionBankQuestionAPI
	commentAPI  api.QuestionCommentAPI
	notifier    notify.Notifier
}

func NewBaguStore(session *SessionStore, a *api.API, notifier notify.Notifier) *BaguStore {
	return &BaguStore{
		thumbIssued:   make(map[int64]uint64),
		thumbApplied:  make(map[int64]uint64),
		favourIssued:  make(map[int64]uint64),
		favourApplied: make(map[int64]uint64),
		cthumbIssued:  make(map[int64]uint64),
		cthumbApplied: make(map[int64]uint64),
		session:       session,
		questionAPI:   a.Question,
		bankAPI:       a.QuestionBank,
		linkAPI:       a.BankQuestion,
		commentAPI:    a.Comment,
		notifier:      notifier,
	}
}

func (s *BaguStore) Banks() []models.QuestionBank { s.mu.Lock(); defer s.mu.Unlock(); return s.banks }

func (s *BaguStore) CurrentBank() *models.QuestionBank {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentBank
}

func (s *BaguStore) Questions() []models.Question { s.mu.Lock(); defer s.mu.Unlock(); return s.questions }

func (s *BaguStore) CurrentQuestion() *models.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentQuestion
}

func (s *BaguStore) Favourites() []models.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favourites
}

func (s *BaguStore) BankQuestionList() []models.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bankQuestionList
}

func (s *BaguStore) Comments() []models.QuestionComment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.comments
}

func (s *BaguStore) Loading() bool { s.mu.Lock(); defer s.mu.Unlock(); return s.loading }

func (s *BaguStore) Total() int64 { s.mu.Lock(); defer s.mu.Unlock(); return s.total }

func (s *BaguStore) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// FetchBanks загружает страницу банков, последняя страница затирает кэш.
func (s *BaguStore) FetchBanks(ctx context.Context, req models.QueryQuestionBankDTO) {
	s.setLoading(true)
	defer s.setLoading(false)

	page, err := s.bankAPI.ListByPage(ctx, req)
	if err != nil {
		log.Printf("[bagu] ошибка загрузки списка банков: %v", err)
		s.notifier.Warning("Не удалось загрузить список банков")
		return
	}

	s.mu.Lock()
	s.banks = page.Records
	s.total = page.Total
	s.mu.Unlock()
}

func (s *BaguStore) FetchBankDetail(ctx context.Context, id int64) {
	s.setLoading(true)
	defer s.setLoading(false)

	bank, err := s.bankAPI.GetByID(ctx, id)
	if err != nil {
		log.Printf("[bagu] ошибка загрузки банка %d: %v", id, err)
		s.notifier.Warning("Не удалось загрузить банк")
		return
	}

	s.mu.Lock()
	s.currentBank = &bank
	s.mu.Unlock()
}

func (s *BaguStore) FetchQuestions(ctx context.Context, req models.QueryQuestionDTO) {
	s.setLoading(true)
	defer s.setLoading(false)

	page, err := s.questionAPI.ListByPage(ctx, req)
	if err != nil {
		log.Printf("[bagu] ошибка загрузки списка вопросов: %v", err)
		s.notifier.Warning("Не удалось загрузить вопросы")
		return
	}

	s.mu.Lock()
	s.questions = page.Records
	s.total = page.Total
	s.mu.Unlock()
}

func (s *BaguStore) SearchQuestions(ctx context.Context, req models.SearchParams) {
	s.setLoading(true)
	defer s.setLoading(false)

	page, err := s.questionAPI.Search(ctx, req)
	if err != nil {
		log.Printf("[bagu] ошибка поиска: %v", err)
		s.notifier.Warning("Поиск не удался")
		return
	}

	s.mu.Lock()
	s.questions = page.Records
	s.total = page.Total
	s.mu.Unlock()
}

func (s *BaguStore) FetchQuestionDetail(ctx context.Context, id int64) {
	s.setLoading(true)
	defer s.setLoading(false)

	question, err := s.questionAPI.GetByID(ctx, id)
	if err != nil {
		log.Printf("[bagu] ошибка загрузки вопроса %d: %v", id, err)
		s.notifier.Warning("Не удалось загрузить вопрос")
		return
	}

	s.mu.Lock()
	s.currentQuestion = &question
	s.mu.Unlock()
}

// ToggleThumb переключает лайк. Требует входа; без токена запрос не уходит.
func (s *BaguStore) ToggleThumb(ctx context.Context, questionID int64) {
	if s.session.Token() == "" {
		s.notifier.Warning(msgLoginFirst)
		return
	}

	s.mu.Lock()
	s.thumbIssued[questionID]++
	seq := s.thumbIssued[questionID]
	s.mu.Unlock()

	nowThumbed, err := s.questionAPI.Thumb(ctx, questionID)
	if err != nil {
		log.Printf("[bagu] ошибка переключения лайка: %v", err)
		s.notifier.Error("Операция не удалась")
		return
	}

	s.mu.Lock()
	if seq <= s.thumbApplied[questionID] {
		// уже применён более свежий ответ, этот устарел
		s.mu.Unlock()
		return
	}
	s.thumbApplied[questionID] = seq
	s.applyThumb(questionID, nowThumbed)
	s.mu.Unlock()

	if nowThumbed {
		s.notifier.Success("Лайк поставлен")
	} else {
		s.notifier.Success("Лайк снят")
	}
}

// applyThumb вызывается под мьютексом. Запись приводится к состоянию,
// которое вернул сервер; булево поле и счётчик меняются строго вместе,
// в обоих местах, где запись может быть закэширована.
func (s *BaguStore) applyThumb(questionID int64, thumbed bool) {
	for i := range s.questions {
		if s.questions[i].ID == questionID {
			setThumb(&s.questions[i], thumbed)
			break
		}
	}
	if s.currentQuestion != nil && s.currentQuestion.ID == questionID {
		setThumb(s.currentQuestion, thumbed)
	}
}

func setThumb(q *models.Question, thumbed bool) {
	if q.HasThumb == thumbed {
		return
	}
	q.HasThumb = thumbed
	if thumbed {
		q.ThumbNum++
	} else {
		q.ThumbNum--
	}
}

// ToggleFavour переключает избранное. Требует входа.
func (s *BaguStore) ToggleFavour(ctx context.Context, questionID int64) {
	if s.session.Token() == "" {
		s.notifier.Warning(msgLoginFirst)
		return
	}

	s.mu.Lock()
	s.favourIssued[questionID]++
	seq := s.favourIssued[questionID]
	s.mu.Unlock()

	nowFavoured, err := s.questionAPI.Favour(ctx, questionID)
	if err != nil {
		log.Printf("[bagu] ошибка переключения избранного: %v", err)
		s.notifier.Error("Операция не удалась")
		return
	}

	s.mu.Lock()
	if seq <= s.favourApplied[questionID] {
		s.mu.Unlock()
		return
	}
	s.favourApplied[questionID] = seq
	s.applyFavour(questionID, nowFavoured)
	s.mu.Unlock()

	if nowFavoured {
		s.notifier.Success("Добавлено в избранное")
	} else {
		s.notifier.Success("Убрано из избранного")
	}
}

// applyFavour вызывается под мьютексом.
func (s *BaguStore) applyFavour(questionID int64, favoured bool) {
	for i := range s.questions {
		if s.questions[i].ID == questionID {
			setFavour(&s.questions[i], favoured)
			break
		}
	}
	if s.currentQuestion != nil && s.currentQuestion.ID == questionID {
		setFavour(s.currentQuestion, favoured)
	}
}

func setFavour(q *models.Question, favoured bool) {
	if q.HasFavour == favoured {
		return
	}
	q.HasFavour = favoured
	if favoured {
		q.FavourNum++
	} else {
		q.FavourNum--
	}
}

// FetchFavourites грузит избранное текущего пользователя. Требует входа.
func (s *BaguStore) FetchFavourites(ctx context.Context, req models.PageParams) {
	if s.session.Token() == "" {
		s.notifier.Warning(msgLoginFirst)
		return
	}

	s.setLoading(true)
	defer s.setLoading(false)

	page, err := s.questionAPI.ListFavour(ctx, req)
	if err != nil {
		log.Printf("[bagu] ошибка загрузки избранного: %v", err)
		s.notifier.Warning("Не удалось загрузить избранное")
		return
	}

	s.mu.Lock()
	s.favourites = page.Records
	s.total = page.Total
	s.mu.Unlock()
}

// FetchBankQuestions грузит полный список вопросов банка для навигации.
// При неудаче старый список сохраняется, как и у остальных коллекций.
func (s *BaguStore) FetchBankQuestions(ctx context.Context, bankID int64) {
	s.setLoading(true)
	defer s.setLoading(false)

	list, err := s.linkAPI.ListByBankID(ctx, bankID)
	if err != nil {
		log.Printf("[bagu] ошибка загрузки вопросов банка %d: %v", bankID, err)
		s.notifier.Warning("Не удалось загрузить вопросы банка")
		return
	}
	if list == nil {
		list = []models.Question{}
	}

	s.mu.Lock()
	s.bankQuestionList = list
	s.mu.Unlock()
}

// QuestionIndex - позиция вопроса в навигационном списке, -1 если его нет.
func (s *BaguStore) QuestionIndex(questionID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questionIndex(questionID)
}

func (s *BaguStore) questionIndex(questionID int64) int {
	for i := range s.bankQuestionList {
		if s.bankQuestionList[i].ID == questionID {
			return i
		}
	}
	return -1
}

// PrevQuestionID - предыдущий вопрос по порядку списка; на краю и для
// неизвестного id соседа нет, списки не зацикливаются.
func (s *BaguStore) PrevQuestionID(currentID int64) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := s.questionIndex(currentID)
	if index > 0 {
		return s.bankQuestionList[index-1].ID, true
	}
	return 0, false
}

// NextQuestionID - следующий вопрос по порядку списка.
func (s *BaguStore) NextQuestionID(currentID int64) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := s.questionIndex(currentID)
	if index >= 0 && index < len(s.bankQuestionList)-1 {
		return s.bankQuestionList[index+1].ID, true
	}
	return 0, false
}

// FetchComments грузит дерево комментариев вопроса (два уровня).
func (s *BaguStore) FetchComments(ctx context.Context, questionID int64) {
	s.setLoading(true)
	defer s.setLoading(false)

	list, err := s.commentAPI.ListByQuestionID(ctx, questionID)
	if err != nil {
		log.Printf("[bagu] ошибка загрузки комментариев вопроса %d: %v", questionID, err)
		s.notifier.Warning("Не удалось загрузить комментарии")
		return
	}

	s.mu.Lock()
	s.comments = list
	s.mu.Unlock()
}

// AddComment добавляет корневой комментарий и перечитывает дерево.
func (s *BaguStore) AddComment(ctx context.Context, req models.AddCommentDTO) {
	if s.session.Token() == "" {
		s.notifier.Warning(msgLoginFirst)
		return
	}

	if _, err := s.commentAPI.Add(ctx, req); err != nil {
		log.Printf("[bagu] ошибка добавления комментария: %v", err)
		s.notifier.Error("Не удалось добавить комментарий")
		return
	}
	s.notifier.Success("Комментарий добавлен")
	s.FetchComments(ctx, req.QuestionID)
}

// ReplyComment отвечает на комментарий и перечитывает дерево.
func (s *BaguStore) ReplyComment(ctx context.Context, req models.ReplyCommentDTO) {
	if s.session.Token() == "" {
		s.notifier.Warning(msgLoginFirst)
		return
	}

	if _, err := s.commentAPI.Reply(ctx, req); err != nil {
		log.Printf("[bagu] ошибка ответа на комментарий: %v", err)
		s.notifier.Error("Не удалось ответить на комментарий")
		return
	}
	s.notifier.Success("Ответ добавлен")
	s.FetchComments(ctx, req.QuestionID)
}

// DeleteComment удаляет комментарий и перечитывает дерево вопроса.
func (s *BaguStore) DeleteComment(ctx context.Context, commentID, questionID int64) {
	if s.session.Token() == "" {
		s.notifier.Warning(msgLoginFirst)
		return
	}

	if _, err := s.commentAPI.Delete(ctx, commentID); err != nil {
		log.Printf("[bagu] ошибка удаления комментария: %v", err)
		s.notifier.Error("Не удалось удалить комментарий")
		return
	}
	s.notifier.Success("Комментарий удалён")
	s.FetchComments(ctx, questionID)
}

// ToggleCommentThumb переключает лайк комментария. Требует входа.
// Как и у вопросов: нумерация по записи, счётчик и флаг вместе.
func (s *BaguStore) ToggleCommentThumb(ctx context.Context, commentID int64) {
	if s.session.Token() == "" {
		s.notifier.Warning(msgLoginFirst)
		return
	}

	s.mu.Lock()
	s.cthumbIssued[commentID]++
	seq := s.cthumbIssued[commentID]
	s.mu.Unlock()

	nowThumbed, err := s.commentAPI.Thumb(ctx, commentID)
	if err != nil {
		log.Printf("[bagu] ошибка переключения лайка комментария: %v", err)
		s.notifier.Error("Операция не удалась")
		return
	}

	s.mu.Lock()
	if seq <= s.cthumbApplied[commentID] {
		s.mu.Unlock()
		return
	}
	s.cthumbApplied[commentID] = seq
	applyCommentThumb(s.comments, commentID, nowThumbed)
	s.mu.Unlock()

	if nowThumbed {
		s.notifier.Success("Лайк поставлен")
	} else {
		s.notifier.Success("Лайк снят")
	}
}

// applyCommentThumb обходит оба уровня дерева.
func applyCommentThumb(comments []models.QuestionComment, commentID int64, thumbed bool) {
	for i := range comments {
		if comments[i].ID == commentID {
			if comments[i].HasThumb != thumbed {
				comments[i].HasThumb = thumbed
				if thumbed {
					comments[i].ThumbNum++
				} else {
					comments[i].ThumbNum--
				}
			}
			return
		}
		applyCommentThumb(comments[i].Children, commentID, thumbed)
	}
}
