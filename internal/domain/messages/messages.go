package messages

// Тексты сообщений бота. Тексты согласованы с автором канала,
// менять формулировки без согласования не следует.
const (
	Welcome = `Привет!
Ты попала в мой бот

Меня зовут Анна Герц
Я - натуропат , помогаю тысячам женщин становиться здоровыми и стройными и влюбляться в свое тело вновь , и вновь.

В этом боте будет много полезных гайдов и уроков 😍
Присоединяйся ✨`

	SubscriptionPrompt = `Для начала  тебе нужно подписаться на мой телеграм-канал, в котором я делюсь очень полезной информацией о чистоте питания, тела и сознания. Показываю реальную жизнь без перекосов, категоричности и вылизанной картинки идеальной жизни !

Где и ты, и я имеем право на ошибки в питании, в спорте, в мыслях, в отношениях - но в этой не идеальности и есть жизнь👍

А также ты найдешь там полезные посты и подкасты про питание и не только  — материал, который не знает гугл, так как это мой опыт и опыт 1000 женщин, прошедших путь очищения со мной .

Подписывайся и жми кнопку ниже ⬇️`

	SubscriptionOK = "Вижу подписку 💗"

	SubscriptionMissing = "Кажется, ты еще не подписалась на канал 🤔\n\n" +
		"Подпишись на канал и нажми кнопку еще раз ⬇️"

	SubscriptionCheckFailed = "Не увидел подписку на канал 🤔\n\n" +
		"Подпишись на канал и попробуй еще раз ⬇️"

	TestInvitation = `Если тебе 30+, а вес стоит, цикл скачет, отеки, лицо "плывёт".

Это может быть следствием
недостаточного потребления белка, отсутствием полезных жиров , застоем лимфы, признаками состояния непроходящего стресса и высокого уровня кортизола, невниманием к себе и своему телу, и  пр.

Я сделала короткий тест (5 вопросов) чтобы показать:
🌟как сейчас работают твои гормоны
🌟подойдёт ли тебе кето
🌟и что будет, если ты попробуешь вычистить свое тело 👍

После теста , я выдам тебе результат и рацион , адаптированный под твою ситуацию`

	TestHeader = "Ответь на 5 вопросов — и я пришлю твой результат + адаптированный рацион на 3 дня\n\n"

	TestNotFound = "Тест не найден. Начните заново с команды /start"

	DietCaption    = "Кето-Начало: лёгкий вход в мир низких углеводов"
	DietFileName   = "Кето-Начало_рацион.pdf"
	DietSendFailed = "Извини, произошла ошибка при отправке файла. Попробуй позже."

	// Кнопки пользовательского потока.
	BtnSubscribe     = "Подписаться на канал"
	BtnCheckSub      = "Проверка подписки"
	BtnStartTest     = "Пройти тест →"
	BtnGetDiet       = "Получить рацион"

	// Админ-панель.
	AdminDenied = "❌ У вас нет доступа к админ-панели."
	AdminMenu   = "🔧 **Админ-панель**\n\nВыберите действие:"

	AdminBroadcastPrompt = "📢 **Массовая рассылка**\n\n" +
		"Отправьте сообщение, которое нужно разослать всем пользователям бота.\n\n" +
		"_Поддерживаются текст, фото, видео и другие типы сообщений._"

	AdminNoUsers           = "❌ Нет пользователей для рассылки."
	AdminUsersEmpty        = "👥 Пользователи не найдены."
	AdminUsersFailed       = "❌ Ошибка при получении списка пользователей."
	AdminStatsFailed       = "❌ Ошибка при получении статистики."
	AdminBroadcastNotFound = "❌ Сообщение для рассылки не найдено."
	AdminBroadcastFailed   = "❌ Ошибка при выполнении рассылки."
	AdminPrepareFailed     = "❌ Ошибка при подготовке рассылки."

	BtnAdminBroadcast = "📢 Массовая рассылка"
	BtnAdminUsers     = "👥 Список пользователей"
	BtnAdminStats     = "📊 Статистика"
	BtnAdminConfirm   = "✅ Отправить"
	BtnAdminCancel    = "❌ Отмена"
	BtnAdminRefresh   = "🔄 Обновить"
	BtnAdminBack      = "◀️ Назад"
	BtnAdminToMenu    = "◀️ В админ-панель"
)
