package quiz

import "fmt"

// ResultBucket — итоговый уровень результата, сопоставленный диапазону баллов.
type ResultBucket struct {
	MinScore    int
	MaxScore    int
	Percentage  int
	Title       string
	Description string
}

// ResultText формирует итоговый текст результата.
func (b ResultBucket) ResultText() string {
	return fmt.Sprintf("%d%% — %s\n\n%s", b.Percentage, b.Title, b.Description)
}

// Buckets — таблица результатов. Диапазоны проверяются строго в порядке
// объявления, первый подходящий выигрывает; переупорядочивать таблицу нельзя.
var Buckets = []ResultBucket{
	{
		MinScore:   100,
		MaxScore:   130,
		Percentage: 60,
		Title:      "Кето может стать отличным способом сохранить баланс",
		Description: `Ты на том этапе, когда тело работает стабильно, и это прекрасно.
Но если ты хочешь:
— дольше сохранить гормональный ресурс
— предотвратить "качели" с весом и энергией
— помочь организму пережить гормональные изменения без стресса

Кето в мягкой форме может быть профилактикой и способом заботы о себе на глубоком уровне.

📩 Забери рацион на 3 дня — начни с легкого входа и посмотри, как тебе.`,
	},
	{
		MinScore:   131,
		MaxScore:   170,
		Percentage: 70,
		Title:      "Твоё тело может реагировать на кето очень хорошо",
		Description: `По твоим ответам видно: ты внимательно следишь за собой и уже знаешь, что работает, а что нет.

Но, возможно, ты чувствуешь, что:
— привычные схемы больше не дают результата
— тело "тормозит"
— хочется больше лёгкости и энергии

Кето — это не просто "есть жир". Это система, которая:
✅ учит тело не зависеть от сахара
✅ даёт питание гормонам
✅ помогает стабилизировать метаболизм

📩 Забери адаптированный рацион на 3 дня и попробуй без стресса и экспериментов над собой.`,
	},
	{
		MinScore:   171,
		MaxScore:   200,
		Percentage: 80,
		Title:      "У тебя может быть высокая чувствительность к углеводам",
		Description: `Ты уже многое знаешь о себе — и, похоже, пришла к моменту, когда хочется изменений, но не через "жесткач".

Кето может тебе подойти, потому что:
✅ оно помогает сохранять мышечную массу
✅ регулирует тягу к сладкому
✅ даёт ощущение насыщения и ясности

Главное — начать грамотно: не с бекона и масла, а с продуманного женского подхода.

📩 Получи рацион на 3 дня — ты почувствуешь первые перемены уже после завтрака.`,
	},
	{
		MinScore:   201,
		MaxScore:   230,
		Percentage: 90,
		Title:      "Кето может стать для тебя новым уровнем энергии и комфорта",
		Description: `Ты точно готова к более глубокому уровню заботы о себе.

Кето помогает женщинам:
✅ улучшать питание кожи и волос
✅ мягко убирать "застои" в теле
✅ питать гормональную систему жирами, а не углеводами

Возможно, ты уже пробовала "есть правильно", считать калории, убирать сладкое.
Но кето работает не за счёт ограничений, а за счёт грамотной перестройки топлива.

📩 Получи кеторацион на 3 дня — это вкусно, легко и даст тебе сразу ощущение "я снова в ресурсе".`,
	},
	{
		MinScore:   231,
		MaxScore:   500,
		Percentage: 100,
		Title:      "У тебя отличные шансы на результаты с женским кето",
		Description: `Всё, что ты прошла, даёт тебе опыт.
А кето может стать твоей новой точкой опоры — не диетой, а стилем жизни, где:
✅ тело сжигает жир эффективно
✅ гормоны работают в балансе
✅ настроение, энергия и либидо восстанавливаются

Твоя система уже готова к переменам — важно просто дать ей поддержку, а не стресс.

📩 Получи 3-дневный рацион, чтобы попробовать этот путь грамотно и бережно к себе.`,
	},
}

// ResolveBucket возвращает первый уровень, диапазон которого содержит score.
// Если ни один диапазон не подходит, возвращается последний уровень
// (резервный, с открытой верхней границей).
func ResolveBucket(score int) ResultBucket {
	for _, b := range Buckets {
		if score >= b.MinScore && score <= b.MaxScore {
			return b
		}
	}
	return Buckets[len(Buckets)-1]
}
