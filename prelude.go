package mal

// preludeForms is the bootstrap written in the language itself, evaluated in
// the root environment before the first prompt. Order matters: or uses
// gensym, which uses *gensym-counter*.
var preludeForms = []string{
	`(def! not (fn* (a) (if a false true)))`,

	`(def! load-file (fn* (f) (eval (read-string (str "(do " (slurp f) ")")))))`,

	`(def! *ARGV* (list))`,

	`(defmacro! cond (fn* (& xs)
	   (if (> (count xs) 0)
	     (list 'if (first xs)
	       (if (> (count xs) 1)
	         (nth xs 1)
	         (throw "odd number of forms to cond"))
	       (cons 'cond (rest (rest xs)))))))`,

	`(def! *gensym-counter* (atom 0))`,

	`(def! gensym (fn* ()
	   (symbol (str "G__" (swap! *gensym-counter* (fn* (x) (+ 1 x)))))))`,

	`(defmacro! or (fn* (& xs)
	   (if (empty? xs)
	     nil
	     (if (= 1 (count xs))
	       (first xs)
	       (let* (condvar (gensym))
	         ` + "`" + `(let* (~condvar ~(first xs))
	           (if ~condvar ~condvar (or ~@(rest xs)))))))))`,

	`(def! *host-language* "` + hostLanguage + `")`,
}

// LoadPrelude evaluates the bootstrap forms in the given environment. It
// stops at the first failure; the driver reports the error and carries on,
// so a broken prelude degrades the session rather than killing it.
func LoadPrelude(env *Env) error {
	for _, form := range preludeForms {
		if _, err := Rep(form, env); err != nil {
			return err
		}
	}
	return nil
}
