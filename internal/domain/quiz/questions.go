package quiz

import "fmt"

// Option — вариант ответа с весом в баллах.
type Option struct {
	Text  string
	Score int
}

// Question — вопрос теста с упорядоченным набором вариантов.
// Порядок вариантов значим: индекс варианта кодируется в callback-токене.
type Question struct {
	Text    string
	Options []Option
}

// Questions — банк вопросов теста. Порядок вопросов фиксирован.
var Questions = []Question{
	{
		Text: "Твой возраст",
		Options: []Option{
			{"до 30", 20},
			{"30–35", 30},
			{"36–40", 40},
			{"41–45", 50},
			{"46+", 60},
		},
	},
	{
		Text: "Как у тебя с гормонами?",
		Options: []Option{
			{"Всё стабильно", 20},
			{"ПМС усилился, отёки, раздражение", 40},
			{"Начались сбои, прыгает цикл", 50},
			{"Уже менопауза / близко", 60},
		},
	},
	{
		Text: "Как ты сейчас питаешься?",
		Options: []Option{
			{"ЗОЖ, но вес не уходит", 40},
			{"Часто срывы", 30},
			{"Постоянно голодная", 50},
			{"Ем нормально, но тяжесть", 50},
		},
	},
	{
		Text: "Что больше всего бесит?",
		Options: []Option{
			{"Лицо стало \"пухлым\"", 40},
			{"Вес держится на животе", 50},
			{"Сил нет", 50},
			{"Постоянные перепады в настроении", 50},
			{"Падает либидо", 40},
			{"Всё вместе 😩", 60},
		},
	},
	{
		Text: "Пробовала ли ты кето раньше?",
		Options: []Option{
			{"Да, но не зашло", 20},
			{"Никогда", 30},
			{"Хочу, но боюсь", 40},
			{"Пробовала — понравилось", 60},
		},
	},
}

// QuestionText формирует текст вопроса с порядковым номером.
// Заголовок теста добавляется только к первому вопросу.
func QuestionText(index int, header string) string {
	h := ""
	if index == 0 {
		h = header
	}
	return fmt.Sprintf("%sВопрос %d: %s", h, index+1, Questions[index].Text)
}
